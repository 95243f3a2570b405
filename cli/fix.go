package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BertoldVdb/romfix/romsum"
	"github.com/rs/zerolog"
)

var (
	ErrorInputNotFound = errors.New("Input file not found")
	ErrorUnverified    = errors.New("Repair finished with warnings")
)

type FixCmd struct {
	Original string `arg name:"original" help:"Unmodified image."`
	Patched  string `arg name:"patched" help:"Modified image to repair."`

	Output string `optional short:"o" help:"Output file (default: <patched>_fixed.bin)."`
	Inject string `optional help:"Drift injection point: safe, compat, manual or ask."`
	Offset int    `optional type:"hex" default:"-1" help:"Injection offset for manual mode."`
	Strict bool   `optional help:"Return an error when the repair produced warnings."`
	Wait   bool   `optional help:"Wait for Enter before exiting when run in a terminal."`
}

func (f *FixCmd) Run(c *Context) error {
	choose, err := chooser(c, f.Inject, f.Offset, true)
	if err != nil {
		return err
	}

	output := f.Output
	if output == "" {
		output = OutputName(f.Patched, c.cfg.OutputSuffix)
	}

	r, err := fixFiles(c, f.Original, f.Patched, output, choose)
	if err != nil {
		return err
	}

	if f.Wait && c.interactive {
		newPrompter(c.stdin, c.stdout).waitEnter()
	}

	if f.Strict && len(r.Warnings) > 0 {
		return fmt.Errorf("%w: %d warning(s)", ErrorUnverified, len(r.Warnings))
	}
	return nil
}

/* OutputName derives <patched-basename><suffix>.bin next to the patched file */
func OutputName(patched string, suffix string) string {
	patched = cleanName(patched)
	return strings.TrimSuffix(patched, filepath.Ext(patched)) + suffix + ".bin"
}

func cleanName(name string) string {
	return strings.Trim(strings.TrimSpace(name), `"'`)
}

/* readImage reads name, retrying without surrounding quotes */
func readImage(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err == nil {
		return data, nil
	}

	if clean := cleanName(name); clean != name {
		if data, err2 := os.ReadFile(clean); err2 == nil {
			return data, nil
		}
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrorInputNotFound, name)
	}
	return nil, err
}

/* noOffset marks an --offset flag that was not given */
const noOffset = -1

/* chooser builds the drift injection decision from flags and configuration. Manual
 * mode without an offset asks for one, or fails when nobody can answer. */
func chooser(c *Context, inject string, offset int, allowAsk bool) (romsum.ChooseFunc, error) {
	canAsk := allowAsk && c.interactive

	mode := inject
	if mode == "" && offset != noOffset {
		mode = "manual"
	}
	if mode == "" {
		mode = c.cfg.Inject
	}

	if mode == "ask" {
		if canAsk {
			p := newPrompter(c.stdin, c.stdout)
			p.clearScreen = true
			return p.chooseInjection, nil
		}
		mode = "safe"
	}

	m, err := romsum.ParseInjectMode(mode)
	if err != nil {
		return nil, err
	}

	if m == romsum.InjectManual && offset == noOffset {
		if !canAsk {
			return nil, fmt.Errorf("%w: manual injection needs --offset", romsum.ErrorInvalidOffset)
		}
		p := newPrompter(c.stdin, c.stdout)
		return func(romsum.InjectionPoints) (romsum.InjectionChoice, error) {
			offset, err := p.askAddress()
			if err != nil {
				return romsum.InjectionChoice{}, err
			}
			return romsum.InjectionChoice{Mode: romsum.InjectManual, Offset: offset}, nil
		}, nil
	}

	return romsum.StaticChoice(romsum.InjectionChoice{Mode: m, Offset: offset}), nil
}

/* fixFiles repairs the patched file against the original and writes output */
func fixFiles(c *Context, originalName, patchedName, output string, choose romsum.ChooseFunc) (*romsum.Result, error) {
	original, err := readImage(originalName)
	if err != nil {
		return nil, err
	}
	patched, err := readImage(patchedName)
	if err != nil {
		return nil, err
	}

	if len(original) != len(patched) {
		c.log.Warn().Int("original", len(original)).Int("patched", len(patched)).Msg("image sizes differ")
	}

	r, err := c.fixer.Fix(original, patched, choose)
	if err != nil {
		return nil, err
	}
	reportResult(c.log, r)

	if r.Method != romsum.MethodNone && c.cfg.LogLevel >= 2 {
		fmt.Fprint(c.stdout, hexdumpWord(patched, r.Offset))
	}

	if err := os.WriteFile(output, patched, 0644); err != nil {
		return nil, err
	}

	c.log.Info().
		Str("file", output).
		Str("crc16", fmt.Sprintf("%04X", fingerprint(patched))).
		Bool("verified", r.Verified).
		Msg("file saved")

	return r, nil
}

func reportResult(log zerolog.Logger, r *romsum.Result) {
	switch r.Method {
	case romsum.MethodStandard:
		log.Info().
			Str("scheme", r.Candidate.Kind.String()).
			Str("region", fmt.Sprintf("0x%X-0x%X", r.Candidate.RegionStart, r.Candidate.RegionEnd)).
			Str("cell", fmt.Sprintf("0x%X", r.Offset)).
			Str("old", fmt.Sprintf("0x%08X", r.OldValue)).
			Str("new", fmt.Sprintf("0x%08X", r.NewValue)).
			Msg("standard checksum fixed")

	case romsum.MethodDrift:
		log.Info().
			Int64("drift", r.Drift).
			Str("mode", r.Choice.Mode.String()).
			Str("cell", fmt.Sprintf("0x%X", r.Offset)).
			Str("old", fmt.Sprintf("0x%08X", r.OldValue)).
			Str("new", fmt.Sprintf("0x%08X", r.NewValue)).
			Msg("drift compensated")

	case romsum.MethodNone:
		log.Info().Msg("sums already match, no fix needed")
	}

	for _, w := range r.Warnings {
		log.Warn().Str("kind", w.Kind.String()).Msg(w.String())
	}

	if r.Method == romsum.MethodDrift && r.Verified {
		log.Info().Str("sum", fmt.Sprintf("0x%08X", r.SumOriginal)).Msg("verification: sums match")
	}
}
