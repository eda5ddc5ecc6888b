package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)

	if writer == nil {
		t.Fatal("NewWriter returned nil")
	}
	if writer.output != &buf {
		t.Error("Writer output doesn't match provided buffer")
	}
	if writer.count != 0 {
		t.Errorf("Initial count should be 0, got %d", writer.count)
	}
}

func TestWriter_WriteRecord(t *testing.T) {
	tests := []struct {
		name    string
		records [][]string
		want    string
	}{
		{
			name:    "single two-field record",
			records: [][]string{{"63bf64bde649ea019b59ac9d", "Errands"}},
			want:    "63bf64bde649ea019b59ac9d Errands\n",
		},
		{
			name: "multiple records",
			records: [][]string{
				{"63bf64c4fa5f3e018751569c", "To Do"},
				{"63bf64c619a280035d4dd6ad", "Doing"},
				{"63bf64c76e7e78024de5c6eb", "Done"},
			},
			want: "63bf64c4fa5f3e018751569c To Do\n63bf64c619a280035d4dd6ad Doing\n63bf64c76e7e78024de5c6eb Done\n",
		},
		{
			name:    "three-field record",
			records: [][]string{{"63bf64bde649ea019b59ac9e", "urgent", "red"}},
			want:    "63bf64bde649ea019b59ac9e urgent red\n",
		},
		{
			name:    "field with internal spaces survives",
			records: [][]string{{"abc123", "Weekly Planning Board"}},
			want:    "abc123 Weekly Planning Board\n",
		},
		{
			name:    "empty records",
			records: [][]string{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writer := NewWriter(&buf)

			for _, record := range tt.records {
				if err := writer.WriteRecord(record...); err != nil {
					t.Fatalf("WriteRecord failed: %v", err)
				}
			}

			if writer.Count() != len(tt.records) {
				t.Errorf("Count mismatch: got %d, want %d", writer.Count(), len(tt.records))
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Output mismatch:\ngot:  %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestWriter_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)

	numGoroutines := 10
	recordsPerGoroutine := 100
	totalRecords := numGoroutines * recordsPerGoroutine

	errCh := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for j := 0; j < recordsPerGoroutine; j++ {
				if err := writer.WriteRecord("5f5f8f7", "concurrent record"); err != nil {
					errCh <- err
					return
				}
			}
			errCh <- nil
		}()
	}

	for i := 0; i < numGoroutines; i++ {
		if err := <-errCh; err != nil {
			t.Fatalf("Concurrent write failed: %v", err)
		}
	}

	if writer.Count() != totalRecords {
		t.Errorf("Count mismatch: got %d, want %d", writer.Count(), totalRecords)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != totalRecords {
		t.Errorf("Line count mismatch: got %d, want %d", len(lines), totalRecords)
	}

	for i, line := range lines {
		if line != "5f5f8f7 concurrent record" {
			t.Errorf("Corrupt record at line %d: %q", i, line)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_WriteError(t *testing.T) {
	writer := NewWriter(failingWriter{})

	if err := writer.WriteRecord("id", "name"); err == nil {
		t.Error("Expected error when underlying writer fails")
	}
	if writer.Count() != 0 {
		t.Errorf("Count should not advance on failed write, got %d", writer.Count())
	}
}
