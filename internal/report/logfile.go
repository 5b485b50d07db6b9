package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// logTimestampLayout matches the grover_results_<timestamp>.txt naming of the
// report files.
const logTimestampLayout = "20060102_150405"

// LogFileName returns the report log filename for the given moment.
func LogFileName(t time.Time) string {
	return fmt.Sprintf("grover_results_%s.txt", t.Format(logTimestampLayout))
}

// CreateLogFile opens a timestamped report log under dir, creating the
// directory if needed. The caller owns closing the file.
func CreateLogFile(dir string, t time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, LogFileName(t))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}
	return f, nil
}
