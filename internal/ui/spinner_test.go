package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func TestInitialSpinnerModel(t *testing.T) {
	m := initialSpinnerModel("Loading...")
	if m.message != "Loading..." {
		t.Errorf("message = %q, want %q", m.message, "Loading...")
	}
	if m.done {
		t.Error("model should not start done")
	}
}

func TestSpinnerModelView(t *testing.T) {
	t.Run("animating view carries the message", func(t *testing.T) {
		m := initialSpinnerModel("Verifying...")
		if view := m.View(); !strings.Contains(view, "Verifying...") {
			t.Errorf("view = %q, want it to contain the message", view)
		}
	})

	t.Run("done with no final line erases the spinner", func(t *testing.T) {
		m := spinnerModel{done: true}
		if view := m.View(); view != "\r\033[K" {
			t.Errorf("view = %q, want the erase sequence", view)
		}
	})

	t.Run("done with a final line prints it", func(t *testing.T) {
		m := spinnerModel{done: true, final: "Done!"}
		if view := m.View(); view != "Done!\n" {
			t.Errorf("view = %q, want %q", view, "Done!\n")
		}
	})
}

func TestSpinnerModelUpdate(t *testing.T) {
	t.Run("q quits", func(t *testing.T) {
		m := initialSpinnerModel("Test")
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		if !next.(spinnerModel).done {
			t.Error("expected done after q")
		}
		if cmd == nil {
			t.Error("expected a quit command")
		}
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		m := initialSpinnerModel("Test")
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if !next.(spinnerModel).done {
			t.Error("expected done after ctrl+c")
		}
		if cmd == nil {
			t.Error("expected a quit command")
		}
	})

	t.Run("success done message sets the final line", func(t *testing.T) {
		m := initialSpinnerModel("Test")
		next, _ := m.Update(spinnerDoneMsg{success: true, message: "Complete"})
		got := next.(spinnerModel)
		if !got.done {
			t.Error("expected done")
		}
		if !strings.Contains(got.final, "Complete") {
			t.Errorf("final = %q, want it to contain %q", got.final, "Complete")
		}
	})

	t.Run("failure done message sets the final line", func(t *testing.T) {
		m := initialSpinnerModel("Test")
		next, _ := m.Update(spinnerDoneMsg{success: false, message: "Failed"})
		got := next.(spinnerModel)
		if !got.done {
			t.Error("expected done")
		}
		if !strings.Contains(got.final, "Failed") {
			t.Errorf("final = %q, want it to contain %q", got.final, "Failed")
		}
	})

	t.Run("empty done message leaves no final line", func(t *testing.T) {
		m := initialSpinnerModel("Test")
		next, _ := m.Update(spinnerDoneMsg{success: true})
		if got := next.(spinnerModel); got.final != "" {
			t.Errorf("final = %q, want empty", got.final)
		}
	})

	t.Run("tick advances the animation", func(t *testing.T) {
		m := initialSpinnerModel("Test")
		if _, cmd := m.Update(spinner.TickMsg{}); cmd == nil {
			t.Error("expected the next tick command")
		}
	})

	t.Run("unrelated messages are ignored", func(t *testing.T) {
		m := initialSpinnerModel("Test")
		if _, cmd := m.Update("unrelated"); cmd != nil {
			t.Error("expected no command")
		}
	})
}

func TestSpinnerModelInit(t *testing.T) {
	m := initialSpinnerModel("Test")
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
}

func TestSpinnerStopBeforeStart(t *testing.T) {
	// Stop without Start must not panic or block.
	NewSpinner().Stop(true, "never started")
}
