package ui

import (
	"strings"
	"testing"
)

func TestStyleHelpers(t *testing.T) {
	helpers := []struct {
		name string
		fn   func(string) string
	}{
		{"Header", Header},
		{"Success", Success},
		{"ErrorMsg", ErrorMsg},
		{"Warning", Warning},
		{"Muted", Muted},
		{"Bold", Bold},
		{"Keyword", Keyword},
		{"Value", Value},
	}

	for _, h := range helpers {
		t.Run(h.name, func(t *testing.T) {
			if got := h.fn("model cache"); !strings.Contains(got, "model cache") {
				t.Errorf("%s dropped its input: %q", h.name, got)
			}
			// Empty input must not panic.
			h.fn("")
		})
	}
}

func TestStatusMarkers(t *testing.T) {
	if !strings.Contains(StatusDownloaded(), "downloaded") {
		t.Error("StatusDownloaded() missing label")
	}
	if !strings.Contains(StatusMissing(), "not downloaded") {
		t.Error("StatusMissing() missing label")
	}
	if !strings.Contains(StatusDownloaded(), IconCheck) {
		t.Error("StatusDownloaded() missing check icon")
	}
	if !strings.Contains(StatusMissing(), IconCross) {
		t.Error("StatusMissing() missing cross icon")
	}
}

func TestFitMarker(t *testing.T) {
	if !strings.Contains(FitMarker(true), IconCheck) {
		t.Error("FitMarker(true) missing check icon")
	}
	if !strings.Contains(FitMarker(false), IconCross) {
		t.Error("FitMarker(false) missing cross icon")
	}
}
