package logging

import (
	"io"

	"go.uber.org/multierr"
)

// TeeWriter writes to every underlying writer. A failing writer does not
// stop the others, its error is combined into the returned one.
type TeeWriter struct {
	Writers []io.Writer
}

func NewTeeWriter(writers ...io.Writer) *TeeWriter {
	return &TeeWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

// Write returns len(p) when every writer took all of p, otherwise the
// smallest count any writer reported along with the combined errors.
func (tw *TeeWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	for _, w := range tw.Writers {
		written, werr := w.Write(p)
		if werr == nil && written < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
		}
		n = min(n, written)
	}
	return n, err
}
