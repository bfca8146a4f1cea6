package output

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	values := []float64{0.5750893688832184, 0.25, 0, 1.2e-05}
	require.NoError(t, Write(buf, values))
	require.Equal(t, "0.5750893688832184\n0.25\n0\n1.2e-05\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(buf, values, WithPrecision(6)))
	require.Equal(t, "0.575089\n0.25\n0\n1.2e-05\n", buf.String())
}

func TestWriteEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, nil))
	require.Zero(t, buf.Len())
}

func TestRead(t *testing.T) {
	values, err := Read(strings.NewReader("0.1\n\n0.2\n 0.3 \n0.4\n"), 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.2, 0.3}, values)

	values, err = Read(strings.NewReader("0.1\n0.2"), 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.2}, values)

	_, err = Read(strings.NewReader("0.1\nabc\n"), 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	values := []float64{0.08997267185200757, 0.508303552659239, 0.07799033003994114}
	require.NoError(t, WriteFile(path, values))

	got, err := ReadFile(path, 0)
	require.NoError(t, err)
	require.Equal(t, values, got)

	require.Error(t, WriteFile(filepath.Join(t.TempDir(), "missing", "output.txt"), values))
}
