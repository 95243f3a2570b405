package romsum

import (
	"errors"
	"testing"
)

func TestReadWriteWord(t *testing.T) {
	buf := make([]byte, 12)
	m := NewBufferRegion(MemoryRegionFull, buf)

	if err := WriteWord(m, 4, 0x01020304); err != nil {
		t.Fatal(err)
	}
	if buf[4] != 1 || buf[7] != 4 {
		t.Errorf("buffer = %x, want big-endian word at 4", buf)
	}

	v, err := ReadWord(m, 4)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x01020304 {
		t.Errorf("ReadWord = 0x%08X", v)
	}
}

func TestReadWriteWordErrors(t *testing.T) {
	m := NewBufferRegion(MemoryRegionFull, make([]byte, 10))

	tests := []struct {
		name string
		addr int
		want error
	}{
		{"unaligned", 2, ErrorUnaligned},
		{"partial word at end", 8, ErrorOutOfBounds},
		{"past end", 12, ErrorOutOfBounds},
		{"negative", -4, ErrorOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadWord(m, tt.addr); !errors.Is(err, tt.want) {
				t.Errorf("ReadWord err = %v, want %v", err, tt.want)
			}
			if err := WriteWord(m, tt.addr, 0); !errors.Is(err, tt.want) {
				t.Errorf("WriteWord err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPartialRegion(t *testing.T) {
	buf := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	root := NewBufferRegion(MemoryRegionFull, buf)
	outer := regionWrapPartial(MemoryRegionData, root, 4, 8)
	inner := regionWrapPartial(MemoryRegionCell, outer, 4, 4)

	data, err := ReadRegion(inner)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(buf[8:12]) {
		t.Errorf("inner region = %x", data)
	}

	/* Reads are clipped to the region */
	tmp := make([]byte, 8)
	n, err := outer.Access(false, 6, tmp)
	if err != nil || n != 2 {
		t.Errorf("clipped read n=%d err=%v, want 2 bytes", n, err)
	}

	if err := WriteWord(inner, 0, 0xAABBCCDD); err != nil {
		t.Fatal(err)
	}
	if buf[8] != 0xAA || buf[11] != 0xDD {
		t.Errorf("write did not reach root buffer: %x", buf)
	}
	if err := WriteWord(inner, 4, 0); !errors.Is(err, ErrorOutOfBounds) {
		t.Errorf("write past region err = %v", err)
	}

	parent, offset := RecursiveGetParentAddress(inner, 2)
	if parent.GetName() != MemoryRegionFull || offset != 10 {
		t.Errorf("parent %s.%X, want FULL.A", parent.GetName(), offset)
	}
}

func TestImageRegions(t *testing.T) {
	f := newTestFixer(t, Config{})

	data := concat(words(0x11111111, 0x22222222, 0x00000010, 0x33333343), filled(16, 0xFF))
	img := f.Analyze(data)

	if img.RealEnd() != 16 {
		t.Errorf("RealEnd = %d", img.RealEnd())
	}

	list := img.MemoryRegionList()
	if len(list) != 5 {
		t.Fatalf("regions = %v, want 5", list)
	}

	tests := []struct {
		name   MemoryRegionNameType
		length int
		offset int
	}{
		{MemoryRegionFull, 32, 0},
		{MemoryRegionData, 16, 0},
		{"padding", 16, 16},
		{MemoryRegionChecksum, 16, 0},
		{MemoryRegionCell, 4, 12},
	}

	for _, tt := range tests {
		m := img.MemoryRegionGet(tt.name)
		if m == nil {
			t.Errorf("%s: region missing", tt.name)
			continue
		}
		if m.GetLength() != tt.length {
			t.Errorf("%s: length %d, want %d", tt.name, m.GetLength(), tt.length)
		}
		if _, offset := RecursiveGetParentAddress(m, 0); offset != tt.offset {
			t.Errorf("%s: offset %d, want %d", tt.name, offset, tt.offset)
		}
	}

	cell, err := ReadWord(img.MemoryRegionGet(MemoryRegionCell), 0)
	if err != nil || cell != 0x33333343 {
		t.Errorf("cell = 0x%08X err %v", cell, err)
	}
}

func TestImageRegionsWithoutChecksum(t *testing.T) {
	f := newTestFixer(t, Config{})
	img := f.Analyze(counting(0x80))

	if len(img.MemoryRegionList()) != 3 {
		t.Errorf("regions = %v, want 3", img.MemoryRegionList())
	}
	if img.MemoryRegionGet(MemoryRegionChecksum) != nil {
		t.Error("checksum region present without detection")
	}
	if img.MemoryRegionGet("bogus") != nil {
		t.Error("unknown region returned")
	}
}
