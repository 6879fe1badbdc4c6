package logging

import (
	"bytes"
	"io"
)

// PrefixWriter decorates an io.Writer so every complete line starts with a
// fixed prefix. Partial lines are held back until their newline arrives.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	pending []byte
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending = append(pw.pending, p...)

	for {
		nl := bytes.IndexByte(pw.pending, '\n')
		if nl < 0 {
			break
		}
		if _, err := pw.writer.Write(pw.prefix); err != nil {
			return len(p), err
		}
		if _, err := pw.writer.Write(pw.pending[:nl+1]); err != nil {
			return len(p), err
		}
		pw.pending = pw.pending[nl+1:]
	}

	return len(p), nil
}
