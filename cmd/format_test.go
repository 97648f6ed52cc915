package cmd

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{"zero time", time.Time{}, "-"},
		{"seconds ago", now.Add(-20 * time.Second), "just now"},
		{"minutes ago", now.Add(-45 * time.Minute), "45m ago"},
		{"hours ago", now.Add(-7 * time.Hour), "7h ago"},
		{"days ago", now.Add(-4 * 24 * time.Hour), "4d ago"},
		{"weeks ago", now.Add(-20 * 24 * time.Hour), "20d ago"},
		{"months ago", now.Add(-90 * 24 * time.Hour), now.Add(-90 * 24 * time.Hour).Format("Jan 2, 2006")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTime(tt.time); got != tt.want {
				t.Errorf("formatTime() = %q, want %q", got, tt.want)
			}
		})
	}
}
