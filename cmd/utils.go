package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/nchapman/murmur/internal/catalog"
	"github.com/nchapman/murmur/internal/config"
	"github.com/nchapman/murmur/internal/logs"
	"github.com/nchapman/murmur/internal/modelcache"
	"github.com/nchapman/murmur/internal/ui"
)

// loadConfig reads ~/.murmur/config.yaml and applies command-line overrides.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("Failed to load config: %v", err)
	}
	if cacheDir != "" {
		cfg.CacheDir = cacheDir
	}
	return cfg
}

// newCatalog builds the catalog location from config: the endpoint and
// revision vary, the repository does not.
func newCatalog(cfg *config.Config) *catalog.Catalog {
	return &catalog.Catalog{
		Endpoint: cfg.Endpoint,
		Repo:     catalog.DefaultRepo,
		Ref:      cfg.Revision,
	}
}

func newManager(cfg *config.Config) *modelcache.Manager {
	return modelcache.New(cfg.ResolvedCacheDir(), newCatalog(cfg), logs.Logger())
}

// resolveTier parses a user-supplied tier name, printing suggestions and
// exiting on a miss.
func resolveTier(arg string) catalog.Tier {
	tier, err := catalog.ParseTier(arg)
	if err != nil {
		ui.PrintError("%v", err)
		if matches := suggestTiers(arg); len(matches) > 0 {
			printTierSuggestions(matches)
		}
		os.Exit(1)
	}
	return tier
}

type tierMatch struct {
	Tier  catalog.Tier
	Score int
}

// suggestTiers scores catalog tiers against a mistyped name: prefix beats
// substring beats shared words. At most five suggestions.
func suggestTiers(input string) []tierMatch {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return nil
	}

	var matches []tierMatch
	for _, tier := range catalog.Tiers() {
		name := string(tier)
		score := 0

		switch {
		case strings.HasPrefix(name, normalized):
			score = 75
		case strings.Contains(name, normalized):
			score = 50
		default:
			for _, word := range strings.FieldsFunc(normalized, func(r rune) bool {
				return r == '-' || r == ' ' || r == '_'
			}) {
				if strings.Contains(name, word) {
					score += 10
				}
			}
		}

		if score > 0 {
			matches = append(matches, tierMatch{Tier: tier, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > 5 {
		matches = matches[:5]
	}
	return matches
}

func printTierSuggestions(matches []tierMatch) {
	fmt.Printf("\n%s\n", ui.Bold("Did you mean?"))
	for _, match := range matches {
		fmt.Printf("  • %s\n", ui.Value(string(match.Tier)))
	}
}

// newProgressBar creates a progress bar that implements modelcache.ProgressDisplay.
func newProgressBar() modelcache.ProgressDisplay {
	return ui.NewProgressBar()
}

// formatTime renders a state timestamp as a rough age.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	age := time.Since(t)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	case age < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
