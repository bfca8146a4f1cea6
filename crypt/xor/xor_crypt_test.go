package xor

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tutils/prng/bbs"
)

func TestNewCrypt(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewCrypt(544141)
	en := c.NewEncoder(buf)
	de := c.NewDecoder(buf)

	_, err := en.Write([]byte("abcdefg"))
	require.NoError(t, err)
	require.NotEqual(t, []byte("abcdefg"), buf.Bytes())

	bs, err := io.ReadAll(de)
	require.NoError(t, err)
	require.Equal(t, "abcdefg", string(bs))
}

func TestBBSKeystream(t *testing.T) {
	newer, err := bbs.SourceNewer(4294967291, 4294967279)
	require.NoError(t, err)

	plain := bytes.Repeat([]byte("blum blum shub "), 100)
	buf := &bytes.Buffer{}
	c := NewCrypt(816559)
	en := c.NewEncoder(buf, WithEncoderRandomSourceNewer(newer))
	// split writes must continue one keystream
	_, err = en.Write(plain[:7])
	require.NoError(t, err)
	_, err = en.Write(plain[7:])
	require.NoError(t, err)
	cipher := append([]byte(nil), buf.Bytes()...)
	require.Len(t, cipher, len(plain))
	require.NotEqual(t, plain, cipher)

	de := c.NewDecoder(bytes.NewReader(cipher), WithDecoderRandomSourceNewer(newer))
	got, err := io.ReadAll(de)
	require.NoError(t, err)
	require.Equal(t, plain, got)

	// another key does not decode
	other := NewCrypt(816560).NewDecoder(bytes.NewReader(cipher), WithDecoderRandomSourceNewer(newer))
	got, err = io.ReadAll(other)
	require.NoError(t, err)
	require.NotEqual(t, plain, got)
}

// shortWriter accepts at most max bytes per call and fails once limit bytes
// have been written in total.
type shortWriter struct {
	buf   bytes.Buffer
	max   int
	limit int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if w.buf.Len() >= w.limit {
		return 0, errors.New("full")
	}
	if len(p) > w.max {
		p = p[:w.max]
	}
	return w.buf.Write(p)
}

func TestShortWrites(t *testing.T) {
	w := &shortWriter{max: 3, limit: 1 << 20}
	c := NewCrypt(544141)
	en := c.NewEncoder(w)

	plain := []byte("abcdefghijklmnopqrstuvwxyz")
	n, err := en.Write(plain[:10])
	require.NoError(t, err)
	require.Equal(t, 10, n)
	n, err = en.Write(plain[10:])
	require.NoError(t, err)
	require.Equal(t, len(plain)-10, n)

	got, err := io.ReadAll(c.NewDecoder(&w.buf))
	require.NoError(t, err)
	require.Equal(t, plain, got)
}

func TestWriteError(t *testing.T) {
	w := &shortWriter{max: 4, limit: 8}
	en := NewCrypt(544141).NewEncoder(w)

	n, err := en.Write([]byte("abcdefghijklmnop"))
	require.Error(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, 8, w.buf.Len())
}
