// Package logs builds murmur's loggers and manages the on-disk session log
// with rotation.
package logs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nchapman/murmur/internal/config"
)

const (
	// MaxRotations is how many rotated generations to keep alongside the
	// live log (.log.1 and .log.2).
	MaxRotations = 2
	// MaxFileSize caps a single log file at 10MB before rotation.
	MaxFileSize = 10 * 1024 * 1024
)

// FilePath returns the path of the session log file.
func FilePath() string {
	return filepath.Join(config.LogsPath(), "murmur.log")
}

// generation returns the file name of the nth rotated copy. Generation
// zero is the live log itself.
func generation(base string, n int) string {
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s.%d", base, n)
}

// rotateLogs shifts every generation up by one: murmur.log becomes
// murmur.log.1, murmur.log.1 becomes murmur.log.2, and whatever sat at
// MaxRotations is dropped. Missing generations are skipped.
func rotateLogs(base string) error {
	os.Remove(generation(base, MaxRotations))

	for n := MaxRotations - 1; n >= 0; n-- {
		src := generation(base, n)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := os.Rename(src, generation(base, n+1)); err != nil {
			return err
		}
	}

	return nil
}

// A RotatingWriter appends to the session log and starts a new generation
// once the file passes MaxFileSize. Safe for concurrent use.
type RotatingWriter struct {
	mu      sync.Mutex
	base    string
	file    *os.File
	written int64
}

// NewRotatingWriter rotates any log left over from a previous run and opens
// a fresh file at base, creating the directory if needed.
func NewRotatingWriter(base string) (*RotatingWriter, error) {
	if err := os.MkdirAll(filepath.Dir(base), 0755); err != nil {
		return nil, err
	}

	w := &RotatingWriter{base: base}
	if err := w.reopen(); err != nil {
		return nil, err
	}
	return w, nil
}

// reopen rotates the generations and starts an empty live log. Callers
// hold w.mu except during construction.
func (w *RotatingWriter) reopen() error {
	if w.file != nil {
		w.file.Close()
		w.file = nil
	}

	if err := rotateLogs(w.base); err != nil {
		return err
	}

	f, err := os.OpenFile(w.base, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	w.file = f
	w.written = 0
	return nil
}

// Write appends p to the live log, rotating first if p would push the file
// past MaxFileSize.
func (w *RotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.written+int64(len(p)) > MaxFileSize {
		if err := w.reopen(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.written += int64(n)
	return n, err
}

// Close releases the log file. Safe to call more than once.
func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// Path returns the live log file's path.
func (w *RotatingWriter) Path() string {
	return w.base
}
