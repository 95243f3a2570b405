package romsum

import (
	"encoding/binary"
	"fmt"
)

type SchemeKind int

const (
	SchemeZeroSum SchemeKind = iota + 1
	SchemeStoredSum
)

func (k SchemeKind) String() string {
	switch k {
	case SchemeZeroSum:
		return "zero"
	case SchemeStoredSum:
		return "stored"
	}
	return fmt.Sprintf("SchemeKind(%d)", int(k))
}

type Candidate struct {
	Kind        SchemeKind
	CellOffset  int
	RegionStart int
	RegionEnd   int
}

/* Detect scans the original image for a checksum cell. Start offsets are tried in
 * order, and inside a region the cells are tested from the end backwards. The first
 * match wins. Cells and regions never extend past the end of original. */
func (f *Fixer) Detect(original []byte) (Candidate, bool) {
	data := padImage(original)
	realEnd := RealEnd(data)
	f.log(2, "Data ends at 0x%X (file size 0x%X)", realEnd, len(original))

	for _, start := range f.config.StartOffsets {
		if start >= realEnd {
			f.log(3, "Skipping region at 0x%X", start)
			continue
		}

		end := realEnd
		if end > len(original) {
			end = len(original)
		}

		region := data[start:realEnd]
		regionSum := Sum32(region)
		f.log(3, "Region 0x%X-0x%X: sum 0x%08X", start, end, regionSum)

		for i := len(region) - 4; i >= 0 && i >= len(region)-f.config.ScanWindow; i -= 4 {
			if start+i+4 > len(original) {
				continue
			}
			stored := binary.BigEndian.Uint32(region[i:])

			c := Candidate{
				CellOffset:  start + i,
				RegionStart: start,
				RegionEnd:   end,
			}

			if regionSum == 0 {
				c.Kind = SchemeZeroSum
				return c, true
			}

			if regionSum == stored*2 {
				c.Kind = SchemeStoredSum
				return c, true
			}
		}
	}

	return Candidate{}, false
}
