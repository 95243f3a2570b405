package romsum

import "encoding/binary"

type MemoryRegionNameType string

const (
	MemoryRegionFull     MemoryRegionNameType = "FULL"
	MemoryRegionData     MemoryRegionNameType = "DATA"
	MemoryRegionPadding  MemoryRegionNameType = "PADDING"
	MemoryRegionChecksum MemoryRegionNameType = "CHECKSUM"
	MemoryRegionCell     MemoryRegionNameType = "CELL"
)

type MemoryRegion interface {
	GetLength() int
	Access(write bool, addr int, buf []byte) (int, error)
	GetParent() (MemoryRegion, int)
	GetName() MemoryRegionNameType
	GetAlignment() int
}

type regionBuffer struct {
	buf  []byte
	name MemoryRegionNameType
}

/* NewBufferRegion exposes buf as a root memory region. Writes go straight into buf. */
func NewBufferRegion(name MemoryRegionNameType, buf []byte) MemoryRegion {
	return regionBuffer{
		buf:  buf,
		name: name,
	}
}

func (r regionBuffer) GetLength() int {
	return len(r.buf)
}

func (r regionBuffer) Access(write bool, addr int, buf []byte) (int, error) {
	if addr < 0 || addr > len(r.buf) {
		return 0, ErrorOutOfBounds
	}

	if write {
		return copy(r.buf[addr:], buf), nil
	}
	return copy(buf, r.buf[addr:]), nil
}

func (r regionBuffer) GetParent() (MemoryRegion, int) {
	return nil, 0
}

func (r regionBuffer) GetName() MemoryRegionNameType {
	return r.name
}

func (r regionBuffer) GetAlignment() int {
	return 1
}

type regionPartial struct {
	parent MemoryRegion
	offset int
	length int
	name   MemoryRegionNameType
}

func regionWrapPartial(name MemoryRegionNameType, parent MemoryRegion, offset int, length int) MemoryRegion {
	return regionPartial{
		parent: parent,
		offset: offset,
		length: length,
		name:   name,
	}
}

func (h regionPartial) GetName() MemoryRegionNameType {
	return h.name
}

func (h regionPartial) GetLength() int {
	return h.length
}

func (h regionPartial) GetParent() (MemoryRegion, int) {
	return h.parent, h.offset
}

func (h regionPartial) GetAlignment() int {
	return h.parent.GetAlignment()
}

func (h regionPartial) Access(write bool, addr int, buf []byte) (int, error) {
	if addr < 0 {
		return 0, ErrorOutOfBounds
	}
	if len(buf)+addr > h.length {
		if addr > h.length {
			return 0, nil
		}
		buf = buf[:h.length-addr]
	}

	return h.parent.Access(write, h.offset+addr, buf)
}

/* ReadRegion copies the whole region into a new buffer */
func ReadRegion(m MemoryRegion) ([]byte, error) {
	buf := make([]byte, m.GetLength())
	n, err := m.Access(false, 0, buf)
	return buf[:n], err
}

/* ReadWord reads the big-endian word at addr, which must be 4-byte aligned */
func ReadWord(m MemoryRegion, addr int) (uint32, error) {
	if addr&3 != 0 {
		return 0, ErrorUnaligned
	}

	var buf [4]byte
	n, err := m.Access(false, addr, buf[:])
	if err != nil {
		return 0, err
	}
	if n != len(buf) {
		return 0, ErrorOutOfBounds
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

/* WriteWord stores value big-endian at addr, which must be 4-byte aligned */
func WriteWord(m MemoryRegion, addr int, value uint32) error {
	if addr&3 != 0 {
		return ErrorUnaligned
	}
	if addr < 0 || addr+4 > m.GetLength() {
		return ErrorOutOfBounds
	}

	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], value)
	_, err := m.Access(true, addr, buf[:])
	return err
}

func RecursiveGetParentAddress(region MemoryRegion, offset int) (MemoryRegion, int) {
	for {
		var parentOffset int
		prevRegion := region
		region, parentOffset = region.GetParent()

		offset += parentOffset

		if region == nil {
			return prevRegion, offset
		}
	}
}
