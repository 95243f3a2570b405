package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BertoldVdb/romfix/romsum"
	"github.com/inancgumus/screen"
)

type ListRegionsCmd struct {
	Image string `arg name:"image" help:"Image to analyse."`
}

func (l *ListRegionsCmd) Run(c *Context) error {
	data, err := readImage(l.Image)
	if err != nil {
		return err
	}

	img := c.fixer.Analyze(data)

	fmt.Fprintf(c.stdout, "Region       |     Length | Parent (%s)\n", l.Image)
	for _, name := range img.MemoryRegionList() {
		m := img.MemoryRegionGet(name)
		parent, offset := romsum.RecursiveGetParentAddress(m, 0)
		fmt.Fprintf(c.stdout, "%-13s| %10d |", m.GetName(), m.GetLength())
		if parent != m {
			fmt.Fprintf(c.stdout, " %s.%06X", parent.GetName(), offset)
		}
		fmt.Fprintln(c.stdout)
	}
	return nil
}

type Region struct {
	Region string `arg name:"region" help:"Memory region to access."`
	Addr   int    `arg name:"addr" help:"Address inside the region." type:"int" optional default:"0"`
}

type DumpCmd struct {
	Loop     int    `optional help:"0=Perform once, 1=Mark changes since start, 2=Mark changes since previous iteration."`
	Filename string `optional help:"File to write dump to."`

	Image  string `arg name:"image" help:"Image to read."`
	Region Region `embed`
	Amount int    `arg name:"amount" help:"Number of bytes to read, omit for maximum." optional default:"0"`
}

func (l *DumpCmd) read(c *Context) ([]byte, error) {
	data, err := readImage(l.Image)
	if err != nil {
		return nil, err
	}

	region := c.fixer.Analyze(data).MemoryRegionGet(romsum.MemoryRegionNameType(l.Region.Region))
	if region == nil {
		return nil, errors.New("Invalid memory region")
	}

	amount := l.Amount
	if amount == 0 {
		amount = region.GetLength() - l.Region.Addr
	}
	if amount < 0 {
		return nil, romsum.ErrorOutOfBounds
	}

	buf := make([]byte, amount)
	n, err := region.Access(false, l.Region.Addr, buf)
	if err != nil {
		return nil, fmt.Errorf("Read error: %w", err)
	}
	return buf[:n], nil
}

func (l *DumpCmd) Run(c *Context) error {
	if l.Loop < 0 || l.Loop > 2 {
		return errors.New("Loop flag out of range")
	}

	var oldBuf []byte
	var mark []bool
	for {
		startTime := time.Now()

		buf, err := l.read(c)
		if err != nil {
			return err
		}

		if l.Filename != "" {
			return os.WriteFile(l.Filename, buf, 0644)
		}

		if l.Loop == 2 || len(mark) != len(buf) {
			mark = make([]bool, len(buf))
		}

		if l.Loop != 0 {
			screen.Clear()
			screen.MoveTopLeft()
			if len(oldBuf) == len(buf) {
				for i, m := range oldBuf {
					if m != buf[i] {
						mark[i] = true
					}
				}
			}
		}
		fmt.Fprintln(c.stdout, hexdump(l.Region.Addr, buf, mark))

		if l.Loop == 0 {
			break
		}
		oldBuf = buf

		d := time.Since(startTime)
		td := 200 * time.Millisecond
		if d < td {
			time.Sleep(td - d)
		}
	}

	return nil
}

type DiffCmd struct {
	A string `arg name:"a" help:"First image."`
	B string `arg name:"b" help:"Second image."`
}

func (d *DiffCmd) Run(c *Context) error {
	a, err := readImage(d.A)
	if err != nil {
		return err
	}
	b, err := readImage(d.B)
	if err != nil {
		return err
	}

	count := diffImages(c, a, b)
	fmt.Fprintf(c.stdout, "%d byte(s) differ.\n", count)
	if len(a) != len(b) {
		fmt.Fprintf(c.stdout, "Sizes differ: 0x%X != 0x%X\n", len(a), len(b))
	}
	return nil
}

/* diffImages prints the rows of b that differ from a and returns the number of changed bytes */
func diffImages(c *Context, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	count := 0
	for row := 0; row < n; row += hexdumpWidth {
		end := row + hexdumpWidth
		if end > n {
			end = n
		}

		mark := make([]bool, end-row)
		changed := false
		for i := row; i < end; i++ {
			if a[i] != b[i] {
				mark[i-row] = true
				changed = true
				count++
			}
		}

		if changed {
			fmt.Fprint(c.stdout, hexdump(row, b[row:end], mark))
		}
	}
	return count
}
