package romsum

import "fmt"

/* Compensate makes the whole-image word sum of patched equal to that of original by
 * adjusting a single free word. The cell is chosen by choose, which may be nil to use
 * the safe point. */
func (f *Fixer) Compensate(original, patched []byte, choose ChooseFunc) (*Result, error) {
	r := &Result{
		Method:      MethodDrift,
		SumOriginal: Sum32(original),
		SumPatched:  Sum32(patched),
	}
	r.Drift = int64(r.SumPatched) - int64(r.SumOriginal)

	f.log(1, "Original sum: 0x%08X", r.SumOriginal)
	f.log(1, "Patched sum:  0x%08X", r.SumPatched)

	if r.Drift == 0 {
		f.log(1, "Sums already match, no fix needed")
		r.Method = MethodNone
		r.Verified = true
		return r, nil
	}

	points, err := LocateInjectionPoints(patched)
	if err != nil {
		return nil, err
	}
	r.Points = points
	f.log(2, "Injection points: safe 0x%X, data 0x%X", points.Safe, points.Data)

	if choose == nil {
		choose = StaticChoice(InjectionChoice{Mode: InjectSafe})
	}
	r.Choice, err = choose(points)
	if err != nil {
		return nil, err
	}

	r.Offset, err = points.Resolve(r.Choice, len(patched))
	if err != nil {
		return nil, err
	}
	f.log(1, "Applying %s fix at 0x%X", r.Choice.Mode, r.Offset)

	image := NewBufferRegion(MemoryRegionFull, patched)
	r.OldValue, err = ReadWord(image, r.Offset)
	if err != nil {
		return nil, err
	}

	if !IsFreeWord(r.OldValue) {
		r.Warnings = append(r.Warnings, Warning{
			Kind:   WarningOccupiedTarget,
			Offset: r.Offset,
			Value:  r.OldValue,
		})
	}

	r.NewValue = r.OldValue - uint32(r.Drift)
	if err := WriteWord(image, r.Offset, r.NewValue); err != nil {
		return nil, err
	}
	f.log(2, "Cell 0x%X: 0x%08X -> 0x%08X", r.Offset, r.OldValue, r.NewValue)

	r.verify(Sum32(patched))

	return r, nil
}

/* Fix runs detection on original and repairs patched in place, falling back to drift
 * compensation when no checksum scheme is found. */
func (f *Fixer) Fix(original, patched []byte, choose ChooseFunc) (*Result, error) {
	c, ok := f.Detect(original)
	if !ok {
		f.log(1, "Standard checksum not detected, using drift compensation")
		return f.Compensate(original, patched, choose)
	}

	f.log(1, "Standard checksum found: %s at 0x%X", c.Kind, c.CellOffset)

	r := &Result{
		Method:      MethodStandard,
		Candidate:   c,
		Offset:      c.CellOffset,
		SumOriginal: Sum32(original),
		SumPatched:  Sum32(patched),
	}
	r.Drift = int64(r.SumPatched) - int64(r.SumOriginal)

	var err error
	r.OldValue, r.NewValue, err = f.Repair(patched, c)
	if err != nil {
		return nil, fmt.Errorf("repair %s checksum: %w", c.Kind, err)
	}
	r.Verified = true

	return r, nil
}
