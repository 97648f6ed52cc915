package modelcache

import "fmt"

// NetworkError reports a transport failure or a non-success HTTP status
// during a download. Retryable.
type NetworkError struct {
	URL        string
	StatusCode int // zero when the failure happened below HTTP
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download failed: HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("download failed for %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FileSystemError reports a local I/O failure. Never retried: a permissions
// or disk-full problem does not fix itself.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

// CorruptionError reports a downloaded or cached file whose digest does not
// match the catalog's pinned SHA-256. Retryable when raised by a download.
type CorruptionError struct {
	Path           string
	ExpectedSHA256 string
	ActualSHA256   string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("model verification failed: hash mismatch for %s (expected %s, got %s)",
		e.Path, e.ExpectedSHA256, e.ActualSHA256)
}

// DownloadFailedError is the terminal error after retry exhaustion. The last
// underlying error is reachable through Unwrap.
type DownloadFailedError struct {
	Attempts int
	Err      error
}

func (e *DownloadFailedError) Error() string {
	return fmt.Sprintf("download failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *DownloadFailedError) Unwrap() error { return e.Err }
