package utils

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shortWriter struct{ limit int }

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		return w.limit, nil
	}
	return len(p), nil
}

type failingWriter struct{ err error }

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestWriteFull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFull(&buf, []byte("YPBN")))
	assert.Equal(t, "YPBN", buf.String())
}

func TestWriteFullShortWrite(t *testing.T) {
	err := WriteFull(&shortWriter{limit: 2}, []byte("TX_ID,TX_TYPE"))
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestWriteFullPropagatesError(t *testing.T) {
	sinkErr := errors.New("sink closed")
	err := WriteFull(&failingWriter{err: sinkErr}, []byte("data"))
	assert.ErrorIs(t, err, sinkErr)
}
