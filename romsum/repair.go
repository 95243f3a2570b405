package romsum

import "fmt"

/* Repair rewrites the checksum cell of patched so the region satisfies the detected
 * scheme again. It returns the previous and the new cell value. */
func (f *Fixer) Repair(patched []byte, c Candidate) (uint32, uint32, error) {
	end := c.RegionEnd
	if end > len(patched) {
		end = len(patched)
	}
	if c.RegionStart < 0 || c.CellOffset < c.RegionStart || c.CellOffset+4 > end {
		return 0, 0, fmt.Errorf("%w: cell 0x%X in region 0x%X-0x%X (image 0x%X)",
			ErrorOutOfBounds, c.CellOffset, c.RegionStart, c.RegionEnd, len(patched))
	}

	image := NewBufferRegion(MemoryRegionFull, patched)
	region := regionWrapPartial(MemoryRegionChecksum, image, c.RegionStart, end-c.RegionStart)

	data, err := ReadRegion(region)
	if err != nil {
		return 0, 0, err
	}
	total := Sum32(data)

	current, err := ReadWord(image, c.CellOffset)
	if err != nil {
		return 0, 0, err
	}

	var value uint32
	switch c.Kind {
	case SchemeZeroSum:
		value = -(total - current)
	case SchemeStoredSum:
		value = total - current
	default:
		return 0, 0, fmt.Errorf("%w: unknown scheme %v", ErrorComputation, c.Kind)
	}

	if err := WriteWord(image, c.CellOffset, value); err != nil {
		return 0, 0, err
	}

	data, err = ReadRegion(region)
	if err != nil {
		return 0, 0, err
	}
	check := Sum32(data)

	expect := uint32(0)
	if c.Kind == SchemeStoredSum {
		expect = value * 2
	}
	if check != expect {
		return current, value, fmt.Errorf("%w: region sum 0x%08X, expected 0x%08X", ErrorComputation, check, expect)
	}

	f.log(1, "Checksum at 0x%X: 0x%08X -> 0x%08X", c.CellOffset, current, value)
	return current, value, nil
}
