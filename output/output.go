// Package output writes and reads generated sequences as plain text: one
// decimal value per line in generation order, no header.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Write writes values to w, one per line.
func Write(w io.Writer, values []float64, opts ...Option) error {
	opt := newOptions(opts...)
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range values {
		buf = strconv.AppendFloat(buf[:0], v, 'g', opt.precision, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates path, truncating it if it exists, and writes values.
func WriteFile(path string, values []float64, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, values, opts...)
}

// Read parses up to limit values from r, one per line. Blank lines are
// skipped. A limit of zero or less reads everything.
func Read(r io.Reader, limit int) ([]float64, error) {
	var values []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		values = append(values, v)
		if limit > 0 && len(values) == limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadFile reads up to limit values from path.
func ReadFile(path string, limit int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, limit)
}
