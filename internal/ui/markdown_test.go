package ui

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	content := "# Tiny\n\nThe smallest model."

	rendered := RenderMarkdown(content)
	if rendered == "" {
		t.Fatal("RenderMarkdown() returned empty string")
	}
	if !strings.Contains(rendered, "Tiny") {
		t.Error("rendered output missing heading text")
	}
	if strings.HasSuffix(rendered, "\n") {
		t.Error("trailing newlines should be trimmed")
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	// Should not panic on empty input.
	_ = RenderMarkdown("")
}
