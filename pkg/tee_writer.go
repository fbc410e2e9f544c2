package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// TeeWriter duplicates writes to every underlying writer. Unlike
// io.MultiWriter it keeps writing to the remaining writers when one of
// them fails and reports the combined error at the end, so a broken log
// file never silences stdout.
type TeeWriter struct {
	writers []io.Writer
}

func NewTeeWriter(writers ...io.Writer) *TeeWriter {
	return &TeeWriter{writers: writers}
}

func (t *TeeWriter) Write(p []byte) (n int, err error) {
	for _, w := range t.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
