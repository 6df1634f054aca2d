package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	gusherrors "gush.dev/gush/internal/errors"
	"gush.dev/gush/internal/prompt"
)

// ErrCanceled is returned when the user aborts a prompt
var ErrCanceled = errors.New("canceled")

// IsInteractive reports whether stdin is a terminal and prompts are allowed
func IsInteractive() bool {
	if os.Getenv("GUSH_NO_INTERACTIVE") != "" {
		return false
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// checkInteractiveAllowed returns an error if prompts cannot be shown
func checkInteractiveAllowed() error {
	if !IsInteractive() {
		return gusherrors.ErrNotInteractive
	}
	return nil
}

// SurveyPrompter asks questions on the terminal using survey
type SurveyPrompter struct {
	splog *Splog
	opts  []survey.AskOpt
}

// NewSurveyPrompter creates a SurveyPrompter reporting rejected answers to splog
func NewSurveyPrompter(splog *Splog, opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{splog: splog, opts: opts}
}

// Ask implements prompt.Prompter
func (p *SurveyPrompter) Ask(req prompt.Request) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	return prompt.Ask(p.read, p.reject, req)
}

func (p *SurveyPrompter) read(message string, suggestions []string) (string, error) {
	input := &survey.Input{Message: strings.TrimSpace(message)}
	if len(suggestions) > 0 {
		input.Suggest = func(toComplete string) []string {
			return prompt.Suggest(suggestions, toComplete)
		}
		input.Help = "Press Tab for suggestions: " + strings.Join(suggestions, ", ")
	}

	var answer string
	if err := survey.AskOne(input, &answer, p.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrCanceled
		}
		return "", err
	}
	return answer, nil
}

func (p *SurveyPrompter) reject(err error) {
	if p.splog != nil {
		p.splog.Warn("%v", err)
	}
}

// confirmModel is a simple yes/no confirmation prompt model
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		case tea.KeyRunes:
			switch strings.ToLower(string(msg.Runes)) {
			case "y":
				m.choice = true
				m.done = true
				return m, tea.Quit
			case "n":
				m.choice = false
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yesNo := "[y/N]"
	if m.choice {
		yesNo = "[Y/n]"
	}
	hint := MutedStyle.Render("(Press y or n, Enter for the default, Ctrl+C to cancel)")
	return lipgloss.NewStyle().Margin(1, 0).Render(fmt.Sprintf("%s %s\n\n%s", m.prompt, yesNo, hint))
}

// PromptConfirm prompts the user for yes/no confirmation
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	m := confirmModel{
		prompt: prompt,
		choice: defaultValue,
	}

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return false, err
	}

	if finalModel, ok := model.(confirmModel); ok {
		if finalModel.err != nil {
			return false, finalModel.err
		}
		return finalModel.choice, nil
	}

	return false, fmt.Errorf("unexpected model type")
}
