package logging

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"
)

// FileWriter mirrors log output to a local file while keeping the standard
// log package non-blocking. The file is opened lazily in append mode and
// writes are silently dropped while it stays unwritable, with a cool-down
// between reopen attempts.
type FileWriter struct {
	path          string
	retryInterval time.Duration

	mu        sync.Mutex
	file      *os.File
	nextRetry time.Time
	closed    bool
}

// Option configures a FileWriter.
type Option func(*FileWriter)

// WithRetryInterval overrides the cool-down window after a failed open or
// write. Defaults to 5 seconds.
func WithRetryInterval(d time.Duration) Option {
	return func(w *FileWriter) {
		w.retryInterval = d
	}
}

// NewFileWriter returns a writer that appends log output to path. The
// returned writer is safe for concurrent use by multiple goroutines.
func NewFileWriter(path string, opts ...Option) (*FileWriter, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("logging: empty file path")
	}

	w := &FileWriter{
		path:          path,
		retryInterval: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Write appends p to the log file. It always reports success to the caller;
// a failed open or write only schedules a retry so logging never blocks or
// breaks the program.
func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, errors.New("logging: writer closed")
	}

	if w.file == nil {
		if time.Now().Before(w.nextRetry) {
			return len(p), nil
		}
		f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			w.nextRetry = time.Now().Add(w.retryInterval)
			return len(p), nil
		}
		w.file = f
	}

	if _, err := w.file.Write(p); err != nil {
		w.file.Close()
		w.file = nil
		w.nextRetry = time.Now().Add(w.retryInterval)
	}
	return len(p), nil
}

// Close releases the underlying file. Subsequent writes fail.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
