package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

var (
	mdOnce     sync.Once
	mdRenderer *glamour.TermRenderer
	mdErr      error
)

// RenderMarkdown renders markdown for terminal display, wrapping at 80
// columns. The glamour renderer is built once and reused; on any failure
// the raw text comes back unchanged.
func RenderMarkdown(content string) string {
	mdOnce.Do(func() {
		mdRenderer, mdErr = glamour.NewTermRenderer(
			glamour.WithStyles(styles.DarkStyleConfig),
			glamour.WithWordWrap(80),
		)
	})
	if mdErr != nil || mdRenderer == nil {
		return content
	}

	rendered, err := mdRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
