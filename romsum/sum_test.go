package romsum

import (
	"bytes"
	"testing"
)

func TestSum32Padding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"one byte", []byte{0x12}},
		{"two bytes", []byte{0x12, 0x34}},
		{"three bytes", []byte{0x12, 0x34, 0x56}},
		{"word and a byte", []byte{1, 2, 3, 4, 0x80}},
		{"zero tail", []byte{0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad := 4 - len(tt.data)%4
			padded := append(append([]byte{}, tt.data...), filled(pad, 0xFF)...)

			if got, want := Sum32(tt.data), Sum32(padded); got != want {
				t.Errorf("Sum32 = 0x%08X, padded sum = 0x%08X", got, want)
			}
		})
	}
}

func TestSum32DoesNotModifyInput(t *testing.T) {
	data := make([]byte, 5, 16)
	orig := append([]byte{}, data...)

	Sum32(data)

	if !bytes.Equal(data, orig) || len(data) != 5 {
		t.Errorf("input changed: %x", data)
	}
	if extra := data[:8]; !bytes.Equal(extra[5:], []byte{0, 0, 0}) {
		t.Errorf("spare capacity written: %x", extra[5:])
	}
}

func TestSum32Values(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"empty", nil, 0},
		{"zero words", make([]byte, 64), 0},
		{"big endian", words(0x01020304), 0x01020304},
		{"two words", words(1, 2), 3},
		{"partial word", []byte{0x00, 0x00, 0x01}, 0x000001FF},
		{"wraparound", words(0xFFFFFFFF, 2), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum32(tt.data); got != tt.want {
				t.Errorf("Sum32 = 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

func TestSum32Wraparound(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 1000} {
		data := filled(4*n, 0xFF)
		want := uint32(uint64(n) * 0xFFFFFFFF % (1 << 32))
		if got := Sum32(data); got != want {
			t.Errorf("%d words: Sum32 = 0x%08X, want 0x%08X", n, got, want)
		}
	}
}

func TestRealEnd(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int
	}{
		{"empty", nil, 0},
		{"all fill", filled(32, 0xFF), 0},
		{"no fill", make([]byte, 16), 16},
		{"rounded up", concat(make([]byte, 5), filled(11, 0xFF)), 8},
		{"aligned data", concat(make([]byte, 8), filled(8, 0xFF)), 8},
		{"0xFF inside data", concat([]byte{0xFF, 0, 0xFF, 0xFF}, filled(4, 0xFF)), 4},
		{"rom tail", concat(make([]byte, 0x7F00), filled(0x100, 0xFF)), 0x7F00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RealEnd(tt.data); got != tt.want {
				t.Errorf("RealEnd = 0x%X, want 0x%X", got, tt.want)
			}
		})
	}
}
