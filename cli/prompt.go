package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BertoldVdb/romfix/romsum"
	"github.com/inancgumus/screen"
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer

	clearScreen bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

/* readLine prints question and returns the trimmed answer. A final line without
 * newline is accepted, io.EOF is only returned when nothing was read. */
func (p *prompter) readLine(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

/* chooseInjection asks the operator where the drift correction should go */
func (p *prompter) chooseInjection(points romsum.InjectionPoints) (romsum.InjectionChoice, error) {
	if p.clearScreen && p.out == os.Stdout {
		screen.Clear()
		screen.MoveTopLeft()
	}

	fmt.Fprintln(p.out, "Select injection method:")
	fmt.Fprintf(p.out, "  [1] Safe mode (recommended) - fix at end of file (0x%X)\n", points.Safe)
	fmt.Fprintf(p.out, "  [2] Compat mode - fix immediately after data (0x%X)\n", points.Data)
	fmt.Fprintln(p.out, "      Use [2] only if the engine cranks but does not start with [1].")
	fmt.Fprintln(p.out, "  [3] Manual address")

	choice, err := p.readLine("Select [1], [2], or [3]: ")
	if err != nil && !errors.Is(err, io.EOF) {
		return romsum.InjectionChoice{}, err
	}

	switch choice {
	case "2":
		return romsum.InjectionChoice{Mode: romsum.InjectCompat}, nil
	case "3":
		offset, err := p.askAddress()
		if err != nil {
			return romsum.InjectionChoice{}, err
		}
		return romsum.InjectionChoice{Mode: romsum.InjectManual, Offset: offset}, nil
	}

	return romsum.InjectionChoice{Mode: romsum.InjectSafe}, nil
}

/* askAddress reads a hex address, asking again until it parses */
func (p *prompter) askAddress() (int, error) {
	for {
		answer, err := p.readLine("Enter hex address: ")
		if err != nil {
			return 0, err
		}

		offset, err := parseHex(answer)
		if err == nil {
			return offset, nil
		}
		fmt.Fprintln(p.out, "Invalid hex.")
	}
}

/* waitEnter blocks until the operator presses enter */
func (p *prompter) waitEnter() {
	p.readLine("Press Enter to close...")
}
