// Package xor implements a keystream cipher: every byte is xored with the
// next byte drawn from a seeded rand.Source. Encoding and decoding are the
// same transform, so a decoder keyed like the encoder restores the input.
//
// The keystream is only as strong as its source. The math/rand default is
// not; a bbs.Source over large Blum primes is the intended choice.
package xor

import (
	"io"
	"math/rand"

	"github.com/tutils/prng/crypt"
)

var _ crypt.Crypt = &xorCrypt{}

type xorCrypt struct {
	seed int64
}

func (c *xorCrypt) NewEncoder(w io.Writer, opts ...crypt.EncoderOption) io.Writer {
	opt := newXorEncoderOptions(opts...)
	return &xorEncoder{
		w:   w,
		rnd: rand.New(opt.sourceNewer(c.seed)),
	}
}

func (c *xorCrypt) NewDecoder(r io.Reader, opts ...crypt.DecoderOption) io.Reader {
	opt := newXorDecoderOptions(opts...)
	return &xorDecoder{
		r:   r,
		rnd: rand.New(opt.sourceNewer(c.seed)),
	}
}

// NewCrypt create a new Crypt keyed by seed
func NewCrypt(seed int64) crypt.Crypt {
	return &xorCrypt{
		seed: seed,
	}
}

type xorEncoder struct {
	w   io.Writer
	rnd *rand.Rand
	buf []byte
}

// Write xors p with the keystream and writes all of it to the underlying
// writer, retrying short writes. The keystream advances by len(p) up front,
// so after an error the encoder is out of step and must be discarded.
func (e *xorEncoder) Write(p []byte) (n int, err error) {
	if cap(e.buf) < len(p) {
		e.buf = make([]byte, len(p))
	} else {
		e.buf = e.buf[:len(p)]
	}

	e.rnd.Read(e.buf)
	for i, b := range p {
		e.buf[i] ^= b
	}

	for n < len(e.buf) {
		var m int
		m, err = e.w.Write(e.buf[n:])
		n += m
		if err != nil {
			return n, err
		}
		if m == 0 {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

type xorDecoder struct {
	r   io.Reader
	rnd *rand.Rand
	buf []byte
}

func (d *xorDecoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n > 0 {
		if cap(d.buf) < n {
			d.buf = make([]byte, n)
		} else {
			d.buf = d.buf[:n]
		}
		d.rnd.Read(d.buf)
		for i, b := range d.buf {
			p[i] ^= b
		}
	}
	return n, err
}
