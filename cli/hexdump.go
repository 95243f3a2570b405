package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const hexdumpWidth = 32

/* hexdump formats data starting at offset. Bytes with mark set are printed in red. */
func hexdump(offset int, data []byte, mark []bool) string {
	var sb strings.Builder
	red := color.New(color.FgRed)

	for row := 0; row < len(data); row += hexdumpWidth {
		var hexPart, asciiPart strings.Builder

		for i := 0; i < hexdumpWidth; i++ {
			index := row + i
			if index >= len(data) {
				hexPart.WriteString("   ")
				asciiPart.WriteByte(' ')
			} else {
				m := data[index]
				ch := m
				if ch < 32 || ch > 126 {
					ch = '.'
				}

				if mark != nil && index < len(mark) && mark[index] {
					hexPart.WriteString(red.Sprintf("%02x ", m))
					asciiPart.WriteString(red.Sprintf("%c", ch))
				} else {
					fmt.Fprintf(&hexPart, "%02x ", m)
					asciiPart.WriteByte(ch)
				}
			}

			if i%8 == 7 {
				hexPart.WriteByte(' ')
			}
		}

		fmt.Fprintf(&sb, "%08x  %s|%s|\n", offset+row, hexPart.String(), asciiPart.String())
	}

	return sb.String()
}

/* hexdumpWord shows the row that holds the word at offset with the word marked */
func hexdumpWord(data []byte, offset int) string {
	start := offset &^ (hexdumpWidth - 1)
	end := start + hexdumpWidth
	if end > len(data) {
		end = len(data)
	}
	if start >= end {
		return ""
	}

	mark := make([]bool, end-start)
	for i := offset; i < offset+4 && i < end; i++ {
		mark[i-start] = true
	}
	return hexdump(start, data[start:end], mark)
}
