package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BertoldVdb/romfix/romsum"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

func init() {
	color.NoColor = true
}

func testContext(t *testing.T, cfg Config) (*Context, *bytes.Buffer) {
	t.Helper()

	fixer, err := romsum.New(romsum.Config{
		StartOffsets: cfg.StartOffsets,
		ScanWindow:   cfg.ScanWindow,
	})
	if err != nil {
		t.Fatal(err)
	}

	out := &bytes.Buffer{}
	return &Context{
		fixer:  fixer,
		cfg:    cfg,
		log:    zerolog.New(zerolog.NewTestWriter(t)),
		stdin:  strings.NewReader(""),
		stdout: out,
	}, out
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func readFile(t *testing.T, p string) []byte {
	t.Helper()
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

/* driftImage has no detectable checksum: words 1..32 and 0x80 bytes of 0xFF */
func driftImage() []byte {
	out := make([]byte, 0x100)
	for i := 0; i < 32; i++ {
		binary.BigEndian.PutUint32(out[4*i:], uint32(i+1))
	}
	for i := 0x80; i < len(out); i++ {
		out[i] = 0xFF
	}
	return out
}

/* zeroSumImage has a zero-sum checksum in its last data word */
func zeroSumImage() []byte {
	out := make([]byte, 0x8000)
	binary.BigEndian.PutUint32(out[0x100:], 0xCAFEBABE)
	binary.BigEndian.PutUint32(out[0x7FFC:], -romsum.Sum32(out))
	return out
}

func withWord(b []byte, offset int, value uint32) []byte {
	out := append([]byte{}, b...)
	binary.BigEndian.PutUint32(out[offset:], value)
	return out
}
