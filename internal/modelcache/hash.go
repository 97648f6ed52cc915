package modelcache

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"strings"
)

// progressWriter reports the running byte count to a callback as data
// flows through it.
type progressWriter struct {
	done   int64
	total  int64
	report func(processed, total int64)
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.done += int64(len(p))
	if w.report != nil {
		w.report(w.done, w.total)
	}
	return len(p), nil
}

// FileSHA256 computes the hex digest of a file.
func FileSHA256(path string) (string, error) {
	return FileSHA256WithProgress(path, nil)
}

// FileSHA256WithProgress streams the file through SHA-256, reporting bytes
// processed against the file size. io.Copy moves the data in small chunks,
// so memory stays constant regardless of model size.
func FileSHA256WithProgress(path string, progress func(processed, total int64)) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}

	hash := sha256.New()
	counter := &progressWriter{total: info.Size(), report: progress}
	if _, err := io.Copy(io.MultiWriter(hash, counter), file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// VerifySHA256 reports whether the file's digest matches expectedHash.
// The comparison ignores case.
func VerifySHA256(path, expectedHash string) (bool, error) {
	actual, err := FileSHA256(path)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(actual, expectedHash), nil
}
