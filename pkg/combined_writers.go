package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans out every write to all of its writers,
// e.g. stdout and the rotated log file.
type CombinedWriter struct {
	Writers []io.Writer
	Err     error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	cw.Writers = append(cw.Writers, writers...)
	return cw
}

func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	n = 0
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	cw.Err = err
	return n, err
}

// Close closes every writer that is also an io.Closer.
func (cw *CombinedWriter) Close() error {
	var err error
	for _, w := range cw.Writers {
		if c, ok := w.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
