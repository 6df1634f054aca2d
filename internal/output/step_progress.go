package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gush.dev/gush/internal/process"
)

// StepStatus is the display state of one step
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepRunning   StepStatus = "running"
	StepDone      StepStatus = "done"
	StepTolerated StepStatus = "tolerated"
	StepFailed    StepStatus = "failed"
)

// StepItem is one line of the progress display
type StepItem struct {
	Label  string
	Status StepStatus
	Error  error
}

// Printer receives the lines of the non-TTY display
type Printer interface {
	Info(format string, args ...interface{})
	Newline()
}

// StepProgress displays the progress of a command sequence
type StepProgress interface {
	process.Observer
	// Start initializes the display with one item per step
	Start(steps []process.Step)
	// Complete finalizes the display and shows a summary
	Complete()
}

// NewStepProgress creates the animated display on a terminal and a line based
// one otherwise.
func NewStepProgress(printer Printer, interactive bool) StepProgress {
	if interactive {
		return NewTTYStepProgress()
	}
	return NewSimpleStepProgress(printer)
}

func statusFor(outcome process.Outcome) StepStatus {
	switch outcome {
	case process.OutcomeSucceeded:
		return StepDone
	case process.OutcomeTolerated:
		return StepTolerated
	default:
		return StepFailed
	}
}

func newItems(steps []process.Step) []StepItem {
	items := make([]StepItem, len(steps))
	for i, step := range steps {
		items[i] = StepItem{Label: step.Line, Status: StepPending}
	}
	return items
}

func summarize(items []StepItem) (completed, failed int) {
	for _, item := range items {
		switch item.Status {
		case StepDone, StepTolerated:
			completed++
		case StepFailed:
			failed++
		}
	}
	return completed, failed
}

// SimpleStepProgress prints progress line by line (non-TTY)
type SimpleStepProgress struct {
	printer Printer
	items   []StepItem
}

// NewSimpleStepProgress creates a new line based progress display
func NewSimpleStepProgress(printer Printer) *SimpleStepProgress {
	return &SimpleStepProgress{printer: printer}
}

func (p *SimpleStepProgress) Start(steps []process.Step) {
	p.items = newItems(steps)
}

func (p *SimpleStepProgress) StepStarted(idx int, step process.Step) {
	if idx >= len(p.items) {
		return
	}
	p.items[idx].Status = StepRunning
	p.printer.Info("  ⋯ %s", step.Line)
}

func (p *SimpleStepProgress) StepFinished(idx int, step process.Step, outcome process.Outcome, err error) {
	if idx >= len(p.items) {
		return
	}
	status := statusFor(outcome)
	p.items[idx].Status = status
	p.items[idx].Error = err

	switch status {
	case StepDone:
		p.printer.Info("  ✓ %s", step.Line)
	case StepTolerated:
		p.printer.Info("  - %s (ignored failure)", step.Line)
	case StepFailed:
		p.printer.Info("  ✗ %s failed: %v", step.Line, err)
	}
}

func (p *SimpleStepProgress) Complete() {
	completed, failed := summarize(p.items)
	if failed > 0 {
		p.printer.Newline()
		p.printer.Info("Completed: %d, Failed: %d", completed, failed)
	}
}

// Items returns a copy of the current display state
func (p *SimpleStepProgress) Items() []StepItem {
	items := make([]StepItem, len(p.items))
	copy(items, p.items)
	return items
}

// TTYStepProgress uses bubbletea for animated progress (TTY)
type TTYStepProgress struct {
	program *tea.Program
	done    chan struct{}
}

// NewTTYStepProgress creates a new TTY progress display
func NewTTYStepProgress() *TTYStepProgress {
	return &TTYStepProgress{}
}

func (p *TTYStepProgress) Start(steps []process.Step) {
	p.program = tea.NewProgram(newStepProgressModel(newItems(steps)), tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		_, _ = p.program.Run()
	}()
}

func (p *TTYStepProgress) StepStarted(idx int, _ process.Step) {
	if p.program == nil {
		return
	}
	p.program.Send(stepUpdateMsg{idx: idx, status: StepRunning})
}

func (p *TTYStepProgress) StepFinished(idx int, _ process.Step, outcome process.Outcome, err error) {
	if p.program == nil {
		return
	}
	p.program.Send(stepUpdateMsg{idx: idx, status: statusFor(outcome), err: err})
}

func (p *TTYStepProgress) Complete() {
	if p.program == nil {
		return
	}
	p.program.Send(stepCompleteMsg{})
	<-p.done
}

type stepStyles struct {
	spinnerStyle lipgloss.Style
	doneStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	labelStyle   lipgloss.Style
	dimStyle     lipgloss.Style
}

// stepProgressModel is the bubbletea model behind TTYStepProgress
type stepProgressModel struct {
	items   []StepItem
	spinner spinner.Model
	done    bool
	styles  stepStyles
}

type stepUpdateMsg struct {
	idx    int
	status StepStatus
	err    error
}

type stepCompleteMsg struct{}

func newStepProgressModel(items []StepItem) *stepProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &stepProgressModel{
		items:   items,
		spinner: s,
		styles: stepStyles{
			spinnerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
			doneStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			labelStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			dimStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func (m *stepProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *stepProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepUpdateMsg:
		if msg.idx < len(m.items) {
			m.items[msg.idx].Status = msg.status
			m.items[msg.idx].Error = msg.err
		}
		return m, m.spinner.Tick

	case stepCompleteMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *stepProgressModel) View() string {
	var b strings.Builder
	b.WriteString("\n")

	for i, item := range m.items {
		var icon string
		switch item.Status {
		case StepRunning:
			icon = m.spinner.View()
		case StepDone:
			icon = m.styles.doneStyle.Render("✓")
		case StepTolerated:
			icon = m.styles.dimStyle.Render("-")
		case StepFailed:
			icon = m.styles.errorStyle.Render("✗")
		default:
			icon = m.styles.dimStyle.Render("○")
		}

		line := fmt.Sprintf("  %s %s", icon, m.styles.labelStyle.Render(item.Label))
		if item.Status == StepTolerated {
			line += " " + m.styles.dimStyle.Render("(ignored failure)")
		}
		if item.Status == StepFailed && item.Error != nil {
			line += " " + m.styles.errorStyle.Render(item.Error.Error())
		}

		b.WriteString(line)
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	if m.done {
		if completed, failed := summarize(m.items); failed > 0 {
			b.WriteString("\n")
			b.WriteString(m.styles.errorStyle.Render(fmt.Sprintf("Completed: %d, Failed: %d", completed, failed)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
