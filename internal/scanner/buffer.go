package scanner

import "strings"

// Buffer is a read-only, line-indexable view over source text.
// It is owned by the caller for the duration of a scan; the scanner
// never mutates it.
type Buffer struct {
	lines []string
}

// NewBuffer wraps an already-split slice of lines.
func NewBuffer(lines []string) *Buffer {
	return &Buffer{lines: lines}
}

// NewBufferFromString splits raw source text into lines.
func NewBufferFromString(src string) *Buffer {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return &Buffer{lines: strings.Split(src, "\n")}
}

// Line returns the line at index i.
func (b *Buffer) Line(i int) string {
	return b.lines[i]
}

// Len returns the number of lines in the buffer.
func (b *Buffer) Len() int {
	return len(b.lines)
}
