package modelcache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/nchapman/murmur/internal/catalog"
	"github.com/nchapman/murmur/internal/version"
)

// Progress phases, in the order they occur.
const (
	PhaseDownload = "download"
	PhaseVerify   = "verify"
)

// Progress reports transfer and verification state.
type Progress struct {
	Phase   string
	Current int64
	Total   int64 // -1 when the server did not send a length
}

type ProgressFunc func(Progress)

// ProgressDisplay renders one progress phase. Implemented by ui.
type ProgressDisplay interface {
	Start(label string, total int64)
	Update(current int64)
	Finish(label string)
	Stop()
}

// ProgressDisplayFactory creates a fresh display per phase.
type ProgressDisplayFactory func() ProgressDisplay

// DownloadModel fetches url into the cache directory. The body streams to
// <name>.tmp in 32 KiB chunks; when expectedSHA256 is non-empty the temp
// file's digest is checked before the atomic rename to the final path, and a
// mismatch deletes the temp file and leaves any existing final file
// untouched. The artifact keeps its remote file name. An empty checksum
// skips verification (ad hoc fetches, not catalog entries).
func (m *Manager) DownloadModel(ctx context.Context, rawURL, expectedSHA256 string, progress ProgressFunc) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid download url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid download url %q: unsupported scheme %q", rawURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid download url %q: missing host", rawURL)
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("invalid download url %q: no file name", rawURL)
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", &FileSystemError{Op: "create cache directory", Path: m.dir, Err: err}
	}

	destPath := filepath.Join(m.dir, name)
	tmpPath := destPath + tempSuffix

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid download url %q: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := m.client.Do(req)
	if err != nil {
		return "", &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &NetworkError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	file, err := os.Create(tmpPath)
	if err != nil {
		return "", &FileSystemError{Op: "create temp file", Path: tmpPath, Err: err}
	}

	totalSize := resp.ContentLength
	written := int64(0)
	buf := make([]byte, 32*1024)

	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := file.Write(buf[:n]); werr != nil {
				file.Close()
				os.Remove(tmpPath)
				return "", &FileSystemError{Op: "write temp file", Path: tmpPath, Err: werr}
			}
			written += int64(n)
			if progress != nil {
				progress(Progress{Phase: PhaseDownload, Current: written, Total: totalSize})
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			file.Close()
			os.Remove(tmpPath)
			return "", &NetworkError{URL: rawURL, Err: rerr}
		}
	}

	if totalSize > 0 && written != totalSize {
		file.Close()
		os.Remove(tmpPath)
		return "", &NetworkError{
			URL: rawURL,
			Err: fmt.Errorf("truncated response: got %d of %d bytes", written, totalSize),
		}
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return "", &FileSystemError{Op: "sync temp file", Path: tmpPath, Err: err}
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return "", &FileSystemError{Op: "close temp file", Path: tmpPath, Err: err}
	}

	if expectedSHA256 != "" {
		actual, err := FileSHA256WithProgress(tmpPath, func(processed, total int64) {
			if progress != nil {
				progress(Progress{Phase: PhaseVerify, Current: processed, Total: total})
			}
		})
		if err != nil {
			os.Remove(tmpPath)
			return "", &FileSystemError{Op: "hash temp file", Path: tmpPath, Err: err}
		}
		if !strings.EqualFold(actual, expectedSHA256) {
			os.Remove(tmpPath)
			m.logger.Warn("downloaded model failed verification",
				"url", rawURL, "expected", expectedSHA256, "actual", actual)
			return "", &CorruptionError{
				Path:           destPath,
				ExpectedSHA256: strings.ToLower(expectedSHA256),
				ActualSHA256:   actual,
			}
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return "", &FileSystemError{Op: "promote model", Path: destPath, Err: err}
	}

	return destPath, nil
}

// DownloadWithRetry downloads a catalog entry from its canonical URL,
// verifying against its pinned digest. Network and corruption failures are
// retried with a linearly increasing delay; total attempts = maxRetries+1.
// Malformed URLs and filesystem failures are returned immediately. After
// exhaustion the last error is wrapped in a DownloadFailedError. Concurrent
// calls for the same entry share a single transfer.
func (m *Manager) DownloadWithRetry(ctx context.Context, e catalog.Entry, maxRetries int, progress ProgressFunc) (string, error) {
	v, err, _ := m.group.Do(e.FileName(), func() (any, error) {
		return m.downloadWithRetry(ctx, e, maxRetries, progress)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (m *Manager) downloadWithRetry(ctx context.Context, e catalog.Entry, maxRetries int, progress ProgressFunc) (string, error) {
	if maxRetries < 0 {
		maxRetries = 0
	}

	downloadURL := m.catalog.DownloadURL(e)
	attempts := maxRetries + 1

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			m.logger.Info("retrying download",
				"model", e.ID, "attempt", attempt, "max", attempts)
			select {
			case <-time.After(m.RetryDelay * time.Duration(attempt-1)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		path, err := m.DownloadModel(ctx, downloadURL, e.SHA256, progress)
		if err == nil {
			return path, nil
		}
		if !retryable(err) {
			return "", err
		}
		lastErr = err
		m.logger.Warn("download attempt failed",
			"model", e.ID, "attempt", attempt, "error", err)
	}

	return "", &DownloadFailedError{Attempts: attempts, Err: lastErr}
}

func retryable(err error) bool {
	var netErr *NetworkError
	var corruptErr *CorruptionError
	return errors.As(err, &netErr) || errors.As(err, &corruptErr)
}

// Pull makes an entry available: a no-op when the cached file already
// verifies, otherwise a download with retries. The boolean reports whether
// a download happened.
func (m *Manager) Pull(ctx context.Context, e catalog.Entry, maxRetries int, force bool, progress ProgressFunc) (string, bool, error) {
	if !force && m.IsAvailable(e, true) {
		return m.ModelPath(e), false, nil
	}

	path, err := m.DownloadWithRetry(ctx, e, maxRetries, progress)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

// PullWithDisplay runs Pull with a fresh progress display per phase: one bar
// for the transfer, one for verification.
func (m *Manager) PullWithDisplay(ctx context.Context, e catalog.Entry, maxRetries int, force bool, factory ProgressDisplayFactory) (string, bool, error) {
	progress, done := DisplayFunc(factory)
	path, downloaded, err := m.Pull(ctx, e, maxRetries, force, progress)
	done(err)
	return path, downloaded, err
}

// DisplayFunc adapts a display factory into a ProgressFunc, creating a fresh
// display each time the phase changes. The returned done func must be called
// when the operation ends: it finishes the last display on success and clears
// it on error.
func DisplayFunc(factory ProgressDisplayFactory) (ProgressFunc, func(err error)) {
	var display ProgressDisplay
	var currentPhase string

	progress := func(p Progress) {
		if factory == nil {
			return
		}
		if p.Phase != currentPhase {
			if display != nil {
				display.Finish(finishLabel(currentPhase))
			}
			currentPhase = p.Phase
			display = factory()
			if p.Phase == PhaseDownload {
				display.Start("", p.Total)
			} else {
				display.Start("Verifying", p.Total)
			}
		}
		if display != nil {
			display.Update(p.Current)
		}
	}

	done := func(err error) {
		if display == nil {
			return
		}
		if err != nil {
			display.Stop()
		} else {
			display.Finish(finishLabel(currentPhase))
		}
		display = nil
	}

	return progress, done
}

func finishLabel(phase string) string {
	if phase == PhaseVerify {
		return "Verified"
	}
	return "Downloaded"
}
