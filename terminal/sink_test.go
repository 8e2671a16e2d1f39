package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureSinkRecordsFrames(t *testing.T) {
	s := NewCaptureSink()
	require.NoError(t, s.Write([]byte("\x1b[1mab")))
	require.NoError(t, s.Write([]byte("cd\x1b[0m")))

	assert.Len(t, s.Frames(), 2)
	assert.Equal(t, []byte("cd\x1b[0m"), s.Last())
	assert.Equal(t, "\x1b[1mabcd\x1b[0m", string(s.Bytes()))
	assert.Equal(t, "abcd", s.Text())
}

func TestCaptureSinkCopiesInput(t *testing.T) {
	s := NewCaptureSink()
	p := []byte("xy")
	require.NoError(t, s.Write(p))
	p[0] = 'z'
	assert.Equal(t, []byte("xy"), s.Last())
}

func TestCaptureSinkErrors(t *testing.T) {
	s := NewCaptureSink()
	boom := errors.New("boom")
	s.FailWith(boom)
	assert.ErrorIs(t, s.Write([]byte("a")), boom)

	s.FailWith(nil)
	s.Close()
	assert.ErrorIs(t, s.Write([]byte("a")), ErrSinkClosed)
}

func TestWriterSink(t *testing.T) {
	var b bytes.Buffer
	s := NewWriterSink(&b)
	require.NoError(t, s.Write([]byte("frame")))
	assert.Equal(t, "frame", b.String())
}
