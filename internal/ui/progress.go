package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

type progressMsg struct {
	current int64
}

type progressDoneMsg struct {
	label string
}

type progressModel struct {
	bar       progress.Model
	label     string
	total     int64
	current   int64
	startedAt time.Time
	done      bool
	doneLabel string
}

func initialProgressModel(label string, total int64) progressModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	return progressModel{
		bar:       bar,
		label:     label,
		total:     total,
		startedAt: time.Now(),
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case progressMsg:
		m.current = msg.current
		return m, nil
	case progressDoneMsg:
		m.done = true
		m.doneLabel = msg.label
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		if m.doneLabel == "" {
			// Clear the line and stay on it (no newline)
			return "\r\033[K"
		}
		return m.doneLabel + "\n"
	}

	var percent float64
	if m.total > 0 {
		percent = float64(m.current) / float64(m.total)
	}

	rate := ""
	if elapsed := time.Since(m.startedAt).Seconds(); elapsed > 0.5 && m.current > 0 {
		rate = fmt.Sprintf(" │ %s/s", FormatBytes(int64(float64(m.current)/elapsed)))
	}

	line := fmt.Sprintf("  %s  %3.0f%% │ %s / %s%s",
		m.bar.ViewAs(percent),
		percent*100,
		FormatBytes(m.current),
		FormatBytes(m.total),
		rate,
	)
	if m.label != "" {
		return "  " + m.label + "\n" + line + "\n"
	}
	return line + "\n"
}

// FormatBytes renders a byte count in IEC units.
func FormatBytes(b int64) string {
	if b < 0 {
		b = 0
	}
	return humanize.IBytes(uint64(b))
}

// ProgressBar is a live transfer bar. It satisfies the model cache's
// progress display contract: one Start/Finish cycle per phase.
type ProgressBar struct {
	program *tea.Program
}

func NewProgressBar() *ProgressBar {
	return &ProgressBar{}
}

func (p *ProgressBar) Start(label string, total int64) {
	m := initialProgressModel(label, total)
	p.program = tea.NewProgram(m)
	go func() {
		p.program.Run()
	}()
}

func (p *ProgressBar) Update(current int64) {
	if p.program != nil {
		p.program.Send(progressMsg{current: current})
	}
}

func (p *ProgressBar) Finish(label string) {
	if p.program != nil {
		p.program.Send(progressDoneMsg{label: Success(label)})
		p.program.Wait()
		p.program = nil
	}
}

func (p *ProgressBar) Stop() {
	if p.program != nil {
		p.program.Send(progressDoneMsg{})
		p.program.Wait()
		p.program = nil
	}
}
