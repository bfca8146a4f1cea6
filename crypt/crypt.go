// Package crypt defines stream transforms keyed by a pseudo-random sequence.
package crypt

import (
	"io"
)

// EncoderOptions is the option set of a concrete encoder.
type EncoderOptions interface{}

// EncoderOption configures an encoder.
type EncoderOption func(EncoderOptions)

// DecoderOptions is the option set of a concrete decoder.
type DecoderOptions interface{}

// DecoderOption configures a decoder.
type DecoderOption func(DecoderOptions)

// Crypt wrap reader and writer
type Crypt interface {
	NewEncoder(w io.Writer, opts ...EncoderOption) io.Writer
	NewDecoder(r io.Reader, opts ...DecoderOption) io.Reader
}
