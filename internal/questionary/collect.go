package questionary

import (
	"fmt"

	"gush.dev/gush/internal/prompt"
)

// AnsweredRow is one collected answer
type AnsweredRow struct {
	Label  string
	Answer string
}

// Collect asks every question of q in order and returns one row per question.
func Collect(p prompt.Prompter, q Questionary) ([]AnsweredRow, error) {
	questions := q.Questions()
	rows := make([]AnsweredRow, 0, len(questions))
	for _, question := range questions {
		answer, err := p.Ask(question.Request())
		if err != nil {
			return nil, fmt.Errorf("failed to answer %q: %w", question.Statement, err)
		}
		rows = append(rows, AnsweredRow{Label: question.Statement, Answer: answer})
	}
	return rows, nil
}
