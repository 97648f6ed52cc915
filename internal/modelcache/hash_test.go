package modelcache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSHA256(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := "Hello, World!"

	if err := os.WriteFile(testFile, []byte(testContent), 0644); err != nil {
		t.Fatal(err)
	}

	hash, err := FileSHA256(testFile)
	if err != nil {
		t.Fatalf("FileSHA256() error = %v", err)
	}

	expectedHash := "dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f"
	if hash != expectedHash {
		t.Errorf("FileSHA256() = %v, want %v", hash, expectedHash)
	}
}

func TestFileSHA256Missing(t *testing.T) {
	_, err := FileSHA256(filepath.Join(t.TempDir(), "missing.bin"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileSHA256WithProgress(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "model.bin")
	content := make([]byte, 100*1024)
	for i := range content {
		content[i] = byte(i % 251)
	}

	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatal(err)
	}

	var lastProcessed, lastTotal int64
	calls := 0
	_, err := FileSHA256WithProgress(testFile, func(processed, total int64) {
		if processed < lastProcessed {
			t.Errorf("progress went backwards: %d after %d", processed, lastProcessed)
		}
		lastProcessed = processed
		lastTotal = total
		calls++
	})
	if err != nil {
		t.Fatalf("FileSHA256WithProgress() error = %v", err)
	}

	if calls == 0 {
		t.Fatal("progress callback was never called")
	}
	if lastProcessed != int64(len(content)) {
		t.Errorf("final processed = %d, want %d", lastProcessed, len(content))
	}
	if lastTotal != int64(len(content)) {
		t.Errorf("total = %d, want %d", lastTotal, len(content))
	}
}

func TestVerifySHA256(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := "Hello, World!"

	if err := os.WriteFile(testFile, []byte(testContent), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		expectedHash string
		want         bool
		wantErr      bool
	}{
		{
			name:         "correct hash",
			expectedHash: "dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f",
			want:         true,
		},
		{
			name:         "incorrect hash",
			expectedHash: "0000000000000000000000000000000000000000000000000000000000000000",
			want:         false,
		},
		{
			name:         "case insensitive",
			expectedHash: "DFFD6021BB2BD5B0AF676290809EC3A53191DD81C7F70A4B28688A362182986F",
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := VerifySHA256(testFile, tt.expectedHash)
			if (err != nil) != tt.wantErr {
				t.Errorf("VerifySHA256() error = %v, wantErr %v", err, tt.wantErr)
			}
			if result != tt.want {
				t.Errorf("VerifySHA256() = %v, want %v", result, tt.want)
			}
		})
	}
}
