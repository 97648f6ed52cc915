package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// spinnerModel animates a one-line spinner until it receives a
// spinnerDoneMsg, then replaces the line with the final status.
type spinnerModel struct {
	spinner spinner.Model
	message string
	final   string
	done    bool
}

type spinnerDoneMsg struct {
	success bool
	message string
}

func initialSpinnerModel(message string) spinnerModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(headerStyle.UnsetBold()),
	)
	return spinnerModel{spinner: sp, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	case spinnerDoneMsg:
		m.done = true
		if msg.message != "" {
			if msg.success {
				m.final = Success(msg.message)
			} else {
				m.final = ErrorMsg(msg.message)
			}
		}
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if !m.done {
		return m.spinner.View() + " " + m.message
	}
	if m.final == "" {
		// Erase the spinner line so the caller's next print starts clean.
		return "\r\033[K"
	}
	return m.final + "\n"
}

// Spinner shows an animated status line for operations without measurable
// progress. Start and Stop pair around the slow call.
type Spinner struct {
	prog *tea.Program
}

func NewSpinner() *Spinner {
	return &Spinner{}
}

// Start begins animating with the given message.
func (s *Spinner) Start(message string) {
	s.prog = tea.NewProgram(initialSpinnerModel(message))
	go s.prog.Run()
}

// Stop ends the animation. A non-empty message replaces the spinner line,
// styled by success; an empty message erases the line. Calling Stop on a
// spinner that never started is a no-op.
func (s *Spinner) Stop(success bool, message string) {
	if s.prog == nil {
		return
	}
	s.prog.Send(spinnerDoneMsg{success: success, message: message})
	s.prog.Wait()
	s.prog = nil
}
