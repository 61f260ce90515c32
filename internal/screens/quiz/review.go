package quiz

import (
	"fmt"

	"github.com/abhisek/quizbox/internal/store"
)

// reviewLines summarizes a finished run: one line per answer and the best
// score seen in this process.
func reviewLines(answers []store.AnswerEvent, best *store.RunSummary) []string {
	lines := make([]string, 0, len(answers)+2)
	for _, a := range answers {
		mark := "✗"
		if a.Correct {
			mark = "✓"
		}
		lines = append(lines, fmt.Sprintf("%s %d. %s  (you picked %s)", mark, a.QuestionIndex+1, a.QuestionText, a.ChosenText))
	}
	if best != nil {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("Best this session: %d/%d", best.Score, best.Total))
	}
	return lines
}
