package romsum

import "fmt"

type Method int

const (
	MethodNone Method = iota
	MethodStandard
	MethodDrift
)

func (m Method) String() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodStandard:
		return "standard"
	case MethodDrift:
		return "drift"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

type WarningKind int

const (
	WarningOccupiedTarget WarningKind = iota + 1
	WarningVerificationMismatch
)

func (k WarningKind) String() string {
	switch k {
	case WarningOccupiedTarget:
		return "occupied-target"
	case WarningVerificationMismatch:
		return "verification-mismatch"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

/* Warning is a condition that did not stop the repair but should be shown to the user */
type Warning struct {
	Kind     WarningKind
	Offset   int
	Value    uint32
	Expected uint32
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningOccupiedTarget:
		return fmt.Sprintf("target 0x%X is not empty (0x%08X), overwritten", w.Offset, w.Value)
	case WarningVerificationMismatch:
		return fmt.Sprintf("verification failed: sum 0x%08X, expected 0x%08X", w.Value, w.Expected)
	}
	return w.Kind.String()
}

type Result struct {
	Method    Method
	Candidate Candidate

	SumOriginal uint32
	SumPatched  uint32
	Drift       int64

	Points InjectionPoints
	Choice InjectionChoice

	Offset   int
	OldValue uint32
	NewValue uint32

	Verified bool
	Warnings []Warning
}

func (r *Result) HasWarning(kind WarningKind) bool {
	for _, m := range r.Warnings {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

/* verify compares the sum of the written image against the original sum. With the
 * cell inside the image the sums always match, a mismatch means the write was lost. */
func (r *Result) verify(sum uint32) {
	if sum == r.SumOriginal {
		r.Verified = true
		return
	}

	r.Warnings = append(r.Warnings, Warning{
		Kind:     WarningVerificationMismatch,
		Offset:   r.Offset,
		Value:    sum,
		Expected: r.SumOriginal,
	})
}
