package main

import (
	"fmt"

	"github.com/BertoldVdb/romfix/romsum"
)

type DetectCmd struct {
	Image string `arg name:"image" help:"Image to scan."`
}

func (d *DetectCmd) Run(c *Context) error {
	data, err := readImage(d.Image)
	if err != nil {
		return err
	}

	cand, ok := c.fixer.Detect(data)
	if !ok {
		fmt.Fprintln(c.stdout, "No standard checksum detected, drift compensation will be used.")
		return nil
	}

	image := romsum.NewBufferRegion(romsum.MemoryRegionFull, data)
	value, err := romsum.ReadWord(image, cand.CellOffset)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "Scheme:   %s\n", cand.Kind)
	fmt.Fprintf(c.stdout, "Region:   0x%X-0x%X\n", cand.RegionStart, cand.RegionEnd)
	fmt.Fprintf(c.stdout, "Location: 0x%X\n", cand.CellOffset)
	fmt.Fprintf(c.stdout, "Value:    0x%08X\n", value)
	return nil
}

type PointsCmd struct {
	Image string `arg name:"image" help:"Image to inspect."`
}

func (p *PointsCmd) Run(c *Context) error {
	data, err := readImage(p.Image)
	if err != nil {
		return err
	}

	points, err := romsum.LocateInjectionPoints(data)
	if err != nil {
		return err
	}

	image := romsum.NewBufferRegion(romsum.MemoryRegionFull, data)
	show := func(name string, offset int) {
		value, err := romsum.ReadWord(image, offset)
		if err != nil {
			fmt.Fprintf(c.stdout, "%-7s| 0x%06X | unusable (%v)\n", name, offset, err)
			return
		}

		state := "free"
		if !romsum.IsFreeWord(value) {
			state = "occupied"
		}
		fmt.Fprintf(c.stdout, "%-7s| 0x%06X | 0x%08X %s\n", name, offset, value, state)
	}

	fmt.Fprintln(c.stdout, "Point  |   Offset | Value")
	show("safe", points.Safe)
	show("compat", points.Data)
	return nil
}

type SumCmd struct {
	Images []string `arg name:"image" help:"Images to sum."`
}

func (s *SumCmd) Run(c *Context) error {
	fmt.Fprintln(c.stdout, "Size     | Data end | Word sum   | CRC16 | File")
	for _, name := range s.Images {
		data, err := readImage(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(c.stdout, "%8X | %8X | 0x%08X | %04X  | %s\n",
			len(data), romsum.RealEnd(data), romsum.Sum32(data), fingerprint(data), name)
	}
	return nil
}
