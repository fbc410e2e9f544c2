package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenWriter struct{}

func (bw *brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTeeWriter_Write(t *testing.T) {
	out1 := &strings.Builder{}
	out2 := &strings.Builder{}

	tw := NewTeeWriter(out1, out2)
	n, err := tw.Write([]byte("timeline ready"))
	require.NoError(t, err)
	assert.Equal(t, 2*len("timeline ready"), n)
	assert.Equal(t, "timeline ready", out1.String())
	assert.Equal(t, "timeline ready", out2.String())
}

func TestTeeWriter_KeepsWritingOnError(t *testing.T) {
	out := &strings.Builder{}

	tw := NewTeeWriter(&brokenWriter{}, out)
	n, err := tw.Write([]byte("hello"))
	assert.Error(t, err)

	// the healthy writer still got the message
	assert.Equal(t, len("hello"), n)
	assert.Equal(t, "hello", out.String())
}
