package romsum

import (
	"fmt"
	"strings"
)

const (
	wordErased = 0xFFFFFFFF
	wordZero   = 0x00000000
)

/* InjectionPoints are two cells that are likely unused. Safe is at the end of the file,
 * Data is the first free word after the last non-0xFF byte. */
type InjectionPoints struct {
	Safe int
	Data int
}

func LocateInjectionPoints(patched []byte) (InjectionPoints, error) {
	if len(patched) < 4 {
		return InjectionPoints{}, ErrorImageTooSmall
	}

	image := NewBufferRegion(MemoryRegionFull, patched)

	last := len(patched)&^3 - 4
	p := InjectionPoints{
		Safe: last,
	}

	if v, _ := ReadWord(image, last); v != wordErased {
		for i := last; i > 0; i -= 4 {
			if v, _ := ReadWord(image, i); v == wordErased {
				p.Safe = i
				break
			}
		}
	}

	idx := len(patched) - 1
	for idx > 0 && patched[idx] == fillByte {
		idx--
	}
	p.Data = alignUp(idx + 1)

	return p, nil
}

type InjectMode int

const (
	InjectSafe InjectMode = iota
	InjectCompat
	InjectManual
)

func (m InjectMode) String() string {
	switch m {
	case InjectSafe:
		return "safe"
	case InjectCompat:
		return "compat"
	case InjectManual:
		return "manual"
	}
	return fmt.Sprintf("InjectMode(%d)", int(m))
}

func ParseInjectMode(s string) (InjectMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "safe", "eof":
		return InjectSafe, nil
	case "compat", "eod":
		return InjectCompat, nil
	case "manual":
		return InjectManual, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrorInvalidChoice, s)
}

type InjectionChoice struct {
	Mode   InjectMode
	Offset int
}

/* ChooseFunc selects where the drift correction is written. It is only called when
 * the sums differ. */
type ChooseFunc func(points InjectionPoints) (InjectionChoice, error)

func StaticChoice(c InjectionChoice) ChooseFunc {
	return func(InjectionPoints) (InjectionChoice, error) {
		return c, nil
	}
}

/* Resolve returns the offset selected by c, checked against an image of size bytes */
func (p InjectionPoints) Resolve(c InjectionChoice, size int) (int, error) {
	var offset int
	switch c.Mode {
	case InjectSafe:
		offset = p.Safe
	case InjectCompat:
		offset = p.Data
	case InjectManual:
		offset = c.Offset
	default:
		return 0, fmt.Errorf("%w: %v", ErrorInvalidChoice, c.Mode)
	}

	if offset < 0 || offset&3 != 0 || offset > size-4 {
		return 0, fmt.Errorf("%w: 0x%X (image size 0x%X)", ErrorInvalidOffset, offset, size)
	}
	return offset, nil
}

/* IsFreeWord reports whether v looks like erased or zeroed flash */
func IsFreeWord(v uint32) bool {
	return v == wordErased || v == wordZero
}
