package main

import (
	"fmt"
	"io"
)

// Printer receives the output lines of a command.
type Printer interface {
	PrintLine(line string)
}

type WriterPrinter struct {
	w io.Writer
}

func NewWriterPrinter(w io.Writer) *WriterPrinter {
	return &WriterPrinter{w: w}
}

func (p *WriterPrinter) PrintLine(line string) {
	fmt.Fprintln(p.w, line)
}

// BufferedPrinter keeps lines in memory.
type BufferedPrinter struct {
	Lines []string
}

func (p *BufferedPrinter) PrintLine(line string) {
	p.Lines = append(p.Lines, line)
}

func (p *BufferedPrinter) Reset() {
	p.Lines = nil
}
