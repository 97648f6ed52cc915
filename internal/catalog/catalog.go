// Package catalog is the static registry of whisper.cpp ggml models murmur
// knows how to fetch: one immutable entry per size tier, with the pinned
// digest and size used for cache validation and the approximate resident
// memory used for budget-aware selection.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Tier identifies a model size tier, including quantized variants.
type Tier string

const (
	TierTiny         Tier = "tiny"
	TierBase         Tier = "base"
	TierSmall        Tier = "small"
	TierMedium       Tier = "medium"
	TierLargeV2      Tier = "large-v2"
	TierLargeV3      Tier = "large-v3"
	TierLargeV3Turbo Tier = "large-v3-turbo"

	TierTinyQ5         Tier = "tiny-q5_1"
	TierBaseQ5         Tier = "base-q5_1"
	TierSmallQ5        Tier = "small-q5_1"
	TierMediumQ5       Tier = "medium-q5_0"
	TierLargeV3Q5      Tier = "large-v3-q5_0"
	TierLargeV3TurboQ5 Tier = "large-v3-turbo-q5_0"
)

// Entry is the immutable metadata for one downloadable model artifact.
type Entry struct {
	ID          Tier
	Name        string
	SHA256      string // pinned digest, 64 lowercase hex chars
	SizeBytes   uint64
	MemoryMB    uint32 // approximate resident memory once loaded
	Fallback    Tier   // next smaller tier for budget downgrade; empty at the bottom
	Description string // markdown shown by `murmur info`
}

// FileName returns the canonical artifact name, stable across mirrors.
func (e Entry) FileName() string {
	return "ggml-" + string(e.ID) + ".bin"
}

const (
	DefaultEndpoint = "https://huggingface.co"
	DefaultRepo     = "ggerganov/whisper.cpp"
	DefaultRef      = "main"
)

// Catalog carries the remote location models resolve against. The entry
// table itself is fixed; only the endpoint and ref vary (mirrors, pinned
// revisions).
type Catalog struct {
	Endpoint string
	Repo     string
	Ref      string
}

// Default returns a catalog pointing at the upstream whisper.cpp repository.
func Default() *Catalog {
	return &Catalog{
		Endpoint: DefaultEndpoint,
		Repo:     DefaultRepo,
		Ref:      DefaultRef,
	}
}

// DownloadURL builds the resolve URL for an entry. Pure string assembly,
// no I/O.
func (c *Catalog) DownloadURL(e Entry) string {
	endpoint := strings.TrimRight(c.Endpoint, "/")
	return fmt.Sprintf("%s/%s/resolve/%s/%s", endpoint, c.Repo, c.Ref, e.FileName())
}

var entries = map[Tier]Entry{
	TierTiny: {
		ID:        TierTiny,
		Name:      "Tiny",
		SHA256:    "35ee109d3225e12cd0fa3fd42acf5072e5863bf53da1b098bf742cb090c55205",
		SizeBytes: 77_691_713,
		MemoryMB:  273,
		Description: "The smallest multilingual model (39M parameters). Fast enough for " +
			"real-time transcription on modest hardware, with noticeably lower accuracy " +
			"on accented or noisy speech. A good smoke-test model.",
	},
	TierBase: {
		ID:        TierBase,
		Name:      "Base",
		SHA256:    "396c469c73e0ceb6bb93230a9356286444ca355b6d649d9ff1f4ec2c7d59780c",
		SizeBytes: 147_951_465,
		MemoryMB:  388,
		Fallback:  TierTiny,
		Description: "A 74M-parameter multilingual model. The default: a reasonable " +
			"accuracy/speed balance for dictation and short recordings.",
	},
	TierSmall: {
		ID:        TierSmall,
		Name:      "Small",
		SHA256:    "201c22d289b4894017282057ccd26d3867b167cdb2a036b12a6883e17350a304",
		SizeBytes: 487_601_967,
		MemoryMB:  852,
		Fallback:  TierBase,
		Description: "A 244M-parameter multilingual model. Markedly better punctuation " +
			"and proper-noun handling than Base at roughly 3x the compute.",
	},
	TierMedium: {
		ID:        TierMedium,
		Name:      "Medium",
		SHA256:    "f0b569bf70b4535532e9975731e00d1ffafef317a0647fb797f579bb694588a1",
		SizeBytes: 1_533_763_059,
		MemoryMB:  2100,
		Fallback:  TierSmall,
		Description: "A 769M-parameter multilingual model. Near large-tier accuracy for " +
			"most clean audio; the usual choice on machines with 8 GB of memory or more.",
	},
	TierLargeV2: {
		ID:        TierLargeV2,
		Name:      "Large v2",
		SHA256:    "755f6011b4a0a3256fc81400d795b9d651c470a3fbde698e6f55e93f2361b897",
		SizeBytes: 3_094_623_691,
		MemoryMB:  3900,
		Fallback:  TierMedium,
		Description: "The previous-generation 1550M-parameter model. Kept for users who " +
			"prefer its output on some languages; most should use large-v3.",
	},
	TierLargeV3: {
		ID:        TierLargeV3,
		Name:      "Large v3",
		SHA256:    "4e4d69fb7298be75ad572c248b60896cae8e60eaf87d443ad387a7669690a6a6",
		SizeBytes: 3_095_033_483,
		MemoryMB:  3900,
		Fallback:  TierMedium,
		Description: "The most accurate model available (1550M parameters). Best word " +
			"error rate across languages, at the cost of several gigabytes of memory " +
			"and the slowest inference.",
	},
	TierLargeV3Turbo: {
		ID:        TierLargeV3Turbo,
		Name:      "Large v3 Turbo",
		SHA256:    "59016a5b79d660e6db9d76a95060b923680fd0fa9a40678ccbcebd173767cf34",
		SizeBytes: 1_624_555_275,
		MemoryMB:  1900,
		Fallback:  TierSmall,
		Description: "A pruned large-v3 (809M parameters) that decodes several times " +
			"faster with accuracy close to the full model. The best pick when memory " +
			"allows it but Large v3 is too slow.",
	},

	TierTinyQ5: {
		ID:        TierTinyQ5,
		Name:      "Tiny (Q5_1)",
		SHA256:    "a5baa9885f3ea006d61bc856ca2830775467cf11e12045debb0623ab2015b1ec",
		SizeBytes: 32_166_155,
		MemoryMB:  200,
		Description: "5-bit quantization of Tiny. The smallest artifact murmur ships; " +
			"useful on very constrained devices.",
	},
	TierBaseQ5: {
		ID:        TierBaseQ5,
		Name:      "Base (Q5_1)",
		SHA256:    "c5b9a602af12e370db7f5e92c0d5e6154c80374abff5b5b2f87ab4473f538166",
		SizeBytes: 59_568_727,
		MemoryMB:  300,
		Fallback:  TierTinyQ5,
		Description: "5-bit quantization of Base. Accuracy within a point or two of the " +
			"full-precision model at well under half the size.",
	},
	TierSmallQ5: {
		ID:        TierSmallQ5,
		Name:      "Small (Q5_1)",
		SHA256:    "9fc3b0a6ac17103e9733477c13f270a3c5c181c9e37bf3d558ea3d789d67d0f5",
		SizeBytes: 190_085_487,
		MemoryMB:  610,
		Fallback:  TierBaseQ5,
		Description: "5-bit quantization of Small. A popular laptop configuration.",
	},
	TierMediumQ5: {
		ID:        TierMediumQ5,
		Name:      "Medium (Q5_0)",
		SHA256:    "f491018922531c8d7013d486cfe5b9e61959e237fb8dfca829ef082cd6c16c66",
		SizeBytes: 539_212_467,
		MemoryMB:  1000,
		Fallback:  TierSmallQ5,
		Description: "5-bit quantization of Medium. Near-Medium accuracy in about a " +
			"gigabyte of memory.",
	},
	TierLargeV3Q5: {
		ID:        TierLargeV3Q5,
		Name:      "Large v3 (Q5_0)",
		SHA256:    "7f61cc9506f13ab52c0421e21ac45562c20d8b5cc3b386a5bf5dd2cf83a592da",
		SizeBytes: 1_081_140_203,
		MemoryMB:  1800,
		Fallback:  TierMediumQ5,
		Description: "5-bit quantization of Large v3. Large-tier accuracy on machines " +
			"that cannot hold the full-precision weights.",
	},
	TierLargeV3TurboQ5: {
		ID:        TierLargeV3TurboQ5,
		Name:      "Large v3 Turbo (Q5_0)",
		SHA256:    "c69d0b31cfd97e465aea3cd6ca66ac10a0ab316fd991b57b687f7ea9704f0585",
		SizeBytes: 574_041_195,
		MemoryMB:  900,
		Fallback:  TierSmallQ5,
		Description: "5-bit quantization of Large v3 Turbo. The strongest " +
			"accuracy-per-megabyte in the catalog.",
	},
}

// tierOrder lists tiers in display order: full-precision models smallest to
// largest, then quantized variants.
var tierOrder = []Tier{
	TierTiny,
	TierBase,
	TierSmall,
	TierMedium,
	TierLargeV2,
	TierLargeV3,
	TierLargeV3Turbo,
	TierTinyQ5,
	TierBaseQ5,
	TierSmallQ5,
	TierMediumQ5,
	TierLargeV3Q5,
	TierLargeV3TurboQ5,
}

// Tiers returns all catalog tiers in display order.
func Tiers() []Tier {
	out := make([]Tier, len(tierOrder))
	copy(out, tierOrder)
	return out
}

// EntryFor looks up the entry for a tier. Every tier returned by Tiers or
// ParseTier has an entry; the boolean is false only for values that never
// came from this package.
func EntryFor(id Tier) (Entry, bool) {
	e, ok := entries[id]
	return e, ok
}

// ParseTier validates a user-supplied tier name.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := entries[t]; !ok {
		return "", fmt.Errorf("unknown model tier %q (see 'murmur list')", s)
	}
	return t, nil
}

// TierForFileName maps an artifact name like "ggml-base.bin" back to its
// tier. Used when scanning the cache directory.
func TierForFileName(name string) (Tier, bool) {
	if !strings.HasPrefix(name, "ggml-") || !strings.HasSuffix(name, ".bin") {
		return "", false
	}
	t := Tier(strings.TrimSuffix(strings.TrimPrefix(name, "ggml-"), ".bin"))
	if _, ok := entries[t]; !ok {
		return "", false
	}
	return t, true
}

// SortTiers orders a slice of tiers by display order in place.
func SortTiers(ts []Tier) {
	rank := make(map[Tier]int, len(tierOrder))
	for i, t := range tierOrder {
		rank[t] = i
	}
	sort.Slice(ts, func(i, j int) bool {
		return rank[ts[i]] < rank[ts[j]]
	})
}
