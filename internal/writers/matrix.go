// internal/writers/matrix.go

// Package writers owns the serialization of confusion matrices to their
// append-only sink.
package writers

import (
	"fmt"
	"os"

	"aprt-core/confusion"
)

// AppendMatrix appends one matrix to the file at path, creating it if
// needed. Prior content is never truncated; the handle is closed on every
// exit path so a failed run cannot leave a dangling open file.
func AppendMatrix(path string, m *confusion.Matrix) (err error) {
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("writers: open %s: %w", path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("writers: close %s: %w", path, cerr)
		}
	}()

	if _, err = m.WriteTo(fh); err != nil {
		return fmt.Errorf("writers: write %s: %w", path, err)
	}
	return nil
}
