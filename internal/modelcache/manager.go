// Package modelcache owns the model cache directory: it answers whether a
// catalog entry's artifact is present and valid, downloads artifacts with
// verification and bounded retries, and lists what is cached. Final files
// live at <dir>/ggml-<tier>.bin; in-progress downloads use a .tmp suffix and
// are promoted with an atomic rename, so a reader never observes a partially
// written model at the final path.
package modelcache

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nchapman/murmur/internal/catalog"
	"golang.org/x/sync/singleflight"
)

const tempSuffix = ".tmp"

// Manager is safe for concurrent use. Validity checks are pure reads;
// concurrent downloads of the same entry collapse into a single transfer.
type Manager struct {
	dir     string
	catalog *catalog.Catalog
	client  *http.Client
	logger  *log.Logger
	group   singleflight.Group

	// RetryDelay is the base wait between retry attempts; the wait grows
	// linearly with the attempt number.
	RetryDelay time.Duration
}

// New creates a manager for the given cache directory. The directory is
// created on first download, not here. A nil catalog means the default
// upstream catalog; a nil logger discards.
func New(dir string, cat *catalog.Catalog, logger *log.Logger) *Manager {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		dir:     dir,
		catalog: cat,
		client: &http.Client{
			// Header timeout only: multi-gigabyte bodies must not race an
			// overall deadline. Callers cancel via context.
			Transport: &http.Transport{
				ResponseHeaderTimeout: 30 * time.Second,
			},
		},
		logger:     logger,
		RetryDelay: time.Second,
	}
}

// Dir returns the cache directory.
func (m *Manager) Dir() string {
	return m.dir
}

// ModelPath returns the final path for an entry's artifact.
func (m *Manager) ModelPath(e catalog.Entry) string {
	return filepath.Join(m.dir, e.FileName())
}

// Exists reports whether the final file is present, with no validity check.
func (m *Manager) Exists(e catalog.Entry) bool {
	_, err := os.Stat(m.ModelPath(e))
	return err == nil
}

// IsAvailable reports whether the entry's cached file is usable. The cheap
// check is existence plus exact size; with verifyHash the file is also
// streamed through SHA-256 and compared against the catalog digest. Pure
// read, no side effects.
func (m *Manager) IsAvailable(e catalog.Entry, verifyHash bool) bool {
	path := m.ModelPath(e)

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.Size() < 0 || uint64(info.Size()) != e.SizeBytes {
		m.logger.Debug("cached model has wrong size",
			"model", e.ID, "expected", e.SizeBytes, "actual", info.Size())
		return false
	}

	if !verifyHash {
		return true
	}

	actual, err := FileSHA256(path)
	if err != nil {
		m.logger.Warn("failed to hash cached model", "model", e.ID, "error", err)
		return false
	}
	if !strings.EqualFold(actual, e.SHA256) {
		m.logger.Warn("cached model failed hash check",
			"model", e.ID, "expected", e.SHA256, "actual", actual)
		return false
	}
	return true
}

// VerifyModel runs the full integrity check for one entry, reporting hash
// progress. Returns false with a nil error for a present-but-invalid file;
// the error is non-nil only for I/O failures.
func (m *Manager) VerifyModel(e catalog.Entry, progress ProgressFunc) (bool, error) {
	path := m.ModelPath(e)

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.Size() < 0 || uint64(info.Size()) != e.SizeBytes {
		return false, nil
	}

	actual, err := FileSHA256WithProgress(path, func(processed, total int64) {
		if progress != nil {
			progress(Progress{Phase: PhaseVerify, Current: processed, Total: total})
		}
	})
	if err != nil {
		return false, err
	}
	return strings.EqualFold(actual, e.SHA256), nil
}

// AvailableModels scans the cache directory and returns the tiers whose
// final file exists. Existence only: no hash verification, so listing stays
// fast no matter how much is cached.
func (m *Manager) AvailableModels() []catalog.Tier {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil
	}

	var tiers []catalog.Tier
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if tier, ok := catalog.TierForFileName(entry.Name()); ok {
			tiers = append(tiers, tier)
		}
	}

	catalog.SortTiers(tiers)
	return tiers
}

// Remove deletes an entry's cached file.
func (m *Manager) Remove(e catalog.Entry) error {
	path := m.ModelPath(e)
	if err := os.Remove(path); err != nil {
		return &FileSystemError{Op: "remove model", Path: path, Err: err}
	}
	return nil
}

// CleanupTempFiles removes orphaned .tmp files left by interrupted
// downloads and returns how many were deleted. Stale temp files are inert
// (they never satisfy the final-name check) so this is maintenance, not
// correctness.
func (m *Manager) CleanupTempFiles() (int, error) {
	count := 0

	err := filepath.Walk(m.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, tempSuffix) {
			if os.Remove(path) == nil {
				count++
			}
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return count, err
	}

	return count, nil
}
