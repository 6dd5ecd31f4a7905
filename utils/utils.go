package utils

import (
	// Go Internal Packages
	"io"
)

// WriteFull writes all of data to w. A write that reports success but
// consumes fewer bytes than given surfaces as io.ErrShortWrite.
func WriteFull(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return err
	}
	if n < len(data) {
		return io.ErrShortWrite
	}
	return nil
}
