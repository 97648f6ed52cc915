// Package selfupdate checks GitHub for a newer murmur release and upgrades
// the binary through whichever installer put it on this machine.
package selfupdate

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nchapman/murmur/internal/version"
)

const releaseURL = "https://api.github.com/repos/nchapman/murmur/releases/latest"

// Release is the subset of the GitHub release payload murmur cares about.
type Release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// Version returns the release version without the tag's leading v.
func (r *Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// CheckLatest fetches the newest published release.
func CheckLatest() (*Release, error) {
	req, err := http.NewRequest(http.MethodGet, releaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", version.UserAgent())

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &release, nil
}

// IsNewer reports whether latest is strictly newer than installed. Versions
// compare numerically field by field, so "1.10.0" beats "1.9.2". Anything
// unparsable (dev builds, odd tags) compares by inequality, meaning a dev
// build always sees a published release as an update.
func IsNewer(installed, latest string) bool {
	a, okA := parseVersion(installed)
	b, okB := parseVersion(latest)
	if !okA || !okB {
		return installed != latest
	}
	for i := range a {
		if a[i] != b[i] {
			return b[i] > a[i]
		}
	}
	return false
}

func parseVersion(s string) ([3]int, bool) {
	var v [3]int
	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(parts) != len(v) {
		return v, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return v, false
		}
		v[i] = n
	}
	return v, true
}

// InstallMethod identifies how the running binary was installed.
type InstallMethod string

const (
	InstallHomebrew InstallMethod = "homebrew"
	InstallGo       InstallMethod = "go"
	InstallUnknown  InstallMethod = "unknown"
)

// DetectInstallMethod inspects the running executable's location.
func DetectInstallMethod() InstallMethod {
	execPath, err := os.Executable()
	if err != nil {
		return InstallUnknown
	}
	execPath, _ = filepath.EvalSymlinks(execPath)

	switch {
	case underHomebrewCellar(execPath):
		return InstallHomebrew
	case strings.Contains(execPath, filepath.Join("go", "bin")):
		return InstallGo
	default:
		return InstallUnknown
	}
}

func underHomebrewCellar(execPath string) bool {
	out, err := exec.Command("brew", "--prefix").Output()
	if err != nil {
		return false
	}
	cellar := filepath.Join(strings.TrimSpace(string(out)), "Cellar", "murmur")
	return strings.HasPrefix(execPath, cellar)
}

// Update upgrades murmur in place using the detected installer, streaming
// the installer's own output to the terminal.
func Update(method InstallMethod) error {
	var steps [][]string
	switch method {
	case InstallHomebrew:
		// Refresh formulas first or brew may upgrade to a stale version.
		steps = [][]string{
			{"brew", "update"},
			{"brew", "upgrade", "murmur"},
		}
	case InstallGo:
		steps = [][]string{
			{"go", "install", "github.com/nchapman/murmur@latest"},
		}
	default:
		return fmt.Errorf("unknown install method %q", method)
	}

	for _, step := range steps {
		cmd := exec.Command(step[0], step[1:]...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s failed: %w", strings.Join(step, " "), err)
		}
	}
	return nil
}

// ManualUpdateInstructions is shown when the install method cannot be
// detected.
func ManualUpdateInstructions() string {
	return `Could not detect how murmur was installed.

To update manually, use one of the following:

  Homebrew:    brew install nchapman/tap/murmur
  Go:          go install github.com/nchapman/murmur@latest

Or download the latest release from:
  https://github.com/nchapman/murmur/releases`
}
