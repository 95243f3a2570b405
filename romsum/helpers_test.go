package romsum

import (
	"encoding/binary"
	"testing"
)

func words(w ...uint32) []byte {
	out := make([]byte, 0, 4*len(w))
	for _, m := range w {
		out = binary.BigEndian.AppendUint32(out, m)
	}
	return out
}

func filled(n int, value byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, m := range parts {
		out = append(out, m...)
	}
	return out
}

func wordAt(b []byte, offset int) uint32 {
	return binary.BigEndian.Uint32(b[offset:])
}

func newTestFixer(t *testing.T, config Config) *Fixer {
	t.Helper()
	config.LogFunc = func(level int, format string, param ...interface{}) {
		t.Logf("romsum(%d): "+format, append([]interface{}{level}, param...)...)
	}
	f, err := New(config)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

/* counting returns 0x80 bytes of words 1..32 followed by pad bytes of 0xFF. No cell in
 * it satisfies either checksum scheme. */
func counting(pad int) []byte {
	var w []uint32
	for i := uint32(1); i <= 32; i++ {
		w = append(w, i)
	}
	return concat(words(w...), filled(pad, 0xFF))
}
