// Package counter measures how many bytes pass through a stream.
package counter

import "io"

// Counter is a cumulative metric
type Counter interface {
	Value() int64
	RatePerSec() int64
	AverageRatePerSec() int64

	Add(n int64)
}

type writer struct {
	w io.Writer
	c Counter
}

func (w *writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.c.Add(int64(n))
	return n, err
}

// NewWriter returns a writer that adds every byte written through it to c.
func NewWriter(w io.Writer, c Counter) io.Writer {
	return &writer{w: w, c: c}
}
