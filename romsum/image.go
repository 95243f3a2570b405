package romsum

import "strings"

/* Image is an analysed firmware image with named regions */
type Image struct {
	data    []byte
	realEnd int

	candidate Candidate
	detected  bool
}

func (f *Fixer) Analyze(data []byte) *Image {
	i := &Image{
		data:    data,
		realEnd: RealEnd(data),
	}
	if i.realEnd > len(data) {
		i.realEnd = len(data)
	}
	i.candidate, i.detected = f.Detect(data)
	return i
}

func (i *Image) RealEnd() int {
	return i.realEnd
}

func (i *Image) Candidate() (Candidate, bool) {
	return i.candidate, i.detected
}

func (i *Image) MemoryRegionList() []MemoryRegionNameType {
	list := []MemoryRegionNameType{
		MemoryRegionFull,
		MemoryRegionData,
		MemoryRegionPadding,
	}

	if i.detected {
		list = append(list, MemoryRegionChecksum)
		list = append(list, MemoryRegionCell)
	}

	return list
}

func (i *Image) MemoryRegionGet(name MemoryRegionNameType) MemoryRegion {
	t := MemoryRegionNameType(strings.ToUpper(string(name)))

	switch t {
	case MemoryRegionFull:
		return NewBufferRegion(MemoryRegionFull, i.data)
	case MemoryRegionData:
		return regionWrapPartial(MemoryRegionData, i.MemoryRegionGet(MemoryRegionFull), 0, i.realEnd)
	case MemoryRegionPadding:
		return regionWrapPartial(MemoryRegionPadding, i.MemoryRegionGet(MemoryRegionFull), i.realEnd, len(i.data)-i.realEnd)
	}

	if !i.detected {
		return nil
	}

	c := i.candidate
	switch t {
	case MemoryRegionChecksum:
		end := c.RegionEnd
		if end > len(i.data) {
			end = len(i.data)
		}
		return regionWrapPartial(MemoryRegionChecksum, i.MemoryRegionGet(MemoryRegionData), c.RegionStart, end-c.RegionStart)
	case MemoryRegionCell:
		return regionWrapPartial(MemoryRegionCell, i.MemoryRegionGet(MemoryRegionChecksum), c.CellOffset-c.RegionStart, 4)
	}

	return nil
}
