package catalog

import (
	"regexp"
	"testing"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestEntriesWellFormed(t *testing.T) {
	seen := make(map[string]Tier)

	for _, tier := range Tiers() {
		e, ok := EntryFor(tier)
		if !ok {
			t.Fatalf("EntryFor(%q) missing", tier)
		}
		if e.ID != tier {
			t.Errorf("entry %q has mismatched ID %q", tier, e.ID)
		}
		if e.Name == "" {
			t.Errorf("entry %q has empty Name", tier)
		}
		if !hexDigest.MatchString(e.SHA256) {
			t.Errorf("entry %q has malformed SHA256 %q", tier, e.SHA256)
		}
		if e.SizeBytes == 0 {
			t.Errorf("entry %q has zero SizeBytes", tier)
		}
		if e.MemoryMB == 0 {
			t.Errorf("entry %q has zero MemoryMB", tier)
		}
		if prev, dup := seen[e.SHA256]; dup {
			t.Errorf("entries %q and %q share SHA256 %s", prev, tier, e.SHA256)
		}
		seen[e.SHA256] = tier
	}
}

func TestEntryForUnknown(t *testing.T) {
	if _, ok := EntryFor("gigantic"); ok {
		t.Error("expected no entry for unknown tier")
	}
}

func TestFallbackChains(t *testing.T) {
	for _, tier := range Tiers() {
		e, _ := EntryFor(tier)

		steps := 0
		for e.Fallback != "" {
			next, ok := EntryFor(e.Fallback)
			if !ok {
				t.Fatalf("tier %q falls back to unknown tier %q", e.ID, e.Fallback)
			}
			if next.MemoryMB >= e.MemoryMB {
				t.Errorf("tier %q (%d MB) falls back to %q (%d MB), which is not smaller",
					e.ID, e.MemoryMB, next.ID, next.MemoryMB)
			}
			e = next
			steps++
			if steps > len(Tiers()) {
				t.Fatalf("fallback chain from %q does not terminate", tier)
			}
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierTiny, "ggml-tiny.bin"},
		{TierLargeV3, "ggml-large-v3.bin"},
		{TierMediumQ5, "ggml-medium-q5_0.bin"},
	}

	for _, tt := range tests {
		e, _ := EntryFor(tt.tier)
		if got := e.FileName(); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.tier, got, tt.want)
		}
	}
}

func TestDownloadURL(t *testing.T) {
	base, _ := EntryFor(TierBase)

	tests := []struct {
		name    string
		catalog *Catalog
		want    string
	}{
		{
			name:    "default endpoint",
			catalog: Default(),
			want:    "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-base.bin",
		},
		{
			name:    "custom mirror",
			catalog: &Catalog{Endpoint: "https://mirror.example.com", Repo: "ggerganov/whisper.cpp", Ref: "main"},
			want:    "https://mirror.example.com/ggerganov/whisper.cpp/resolve/main/ggml-base.bin",
		},
		{
			name:    "trailing slash trimmed",
			catalog: &Catalog{Endpoint: "https://huggingface.co/", Repo: "ggerganov/whisper.cpp", Ref: "main"},
			want:    "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-base.bin",
		},
		{
			name:    "pinned revision",
			catalog: &Catalog{Endpoint: "https://huggingface.co", Repo: "ggerganov/whisper.cpp", Ref: "d15393806e24a74f60827e23e986f0c10750b358"},
			want:    "https://huggingface.co/ggerganov/whisper.cpp/resolve/d15393806e24a74f60827e23e986f0c10750b358/ggml-base.bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.catalog.DownloadURL(base); got != tt.want {
				t.Errorf("DownloadURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		input   string
		want    Tier
		wantErr bool
	}{
		{"tiny", TierTiny, false},
		{"Base", TierBase, false},
		{"  large-v3  ", TierLargeV3, false},
		{"LARGE-V3-TURBO", TierLargeV3Turbo, false},
		{"medium-q5_0", TierMediumQ5, false},
		{"huge", "", true},
		{"", "", true},
		{"ggml-base.bin", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTier(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTier(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTier(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTierForFileName(t *testing.T) {
	tests := []struct {
		name   string
		want   Tier
		wantOK bool
	}{
		{"ggml-tiny.bin", TierTiny, true},
		{"ggml-large-v3-turbo-q5_0.bin", TierLargeV3TurboQ5, true},
		{"ggml-tiny.bin.tmp", "", false},
		{"ggml-huge.bin", "", false},
		{"notes.txt", "", false},
		{"tiny.bin", "", false},
	}

	for _, tt := range tests {
		got, ok := TierForFileName(tt.name)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("TierForFileName(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSortTiers(t *testing.T) {
	ts := []Tier{TierLargeV3, TierTiny, TierMediumQ5, TierBase}
	SortTiers(ts)

	want := []Tier{TierTiny, TierBase, TierLargeV3, TierMediumQ5}
	for i := range want {
		if ts[i] != want[i] {
			t.Fatalf("SortTiers = %v, want %v", ts, want)
		}
	}
}
