package output

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Writer handles streaming line-oriented records to an io.Writer.
// It ensures memory-efficient writing without accumulating data.
type Writer struct {
	mu     sync.Mutex
	output io.Writer
	count  int
}

// NewWriter creates a new record writer that writes to the specified output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		output: w,
	}
}

// WriteRecord writes a single record as one line, fields joined by spaces.
// Each record is immediately flushed to the output.
func (w *Writer) WriteRecord(fields ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := fmt.Fprintln(w.output, strings.Join(fields, " ")); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}
