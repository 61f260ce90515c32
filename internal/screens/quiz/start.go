package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/ui/theme"
)

const bannerArt = `
 ___  _   _ ___ _____ ___  _____  __
/ _ \| | | |_ _|_  / | _ )/ _ \ \/ /
| (_) | |_| || | / /  | _ \ (_) >  <
\__\_\\___/|___/___| |___/\___/_/\_\`

// StartMarkup is the static content of the start region.
func StartMarkup(questions int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(bannerArt))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Think you can read my mind?"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(pluralQuestions(questions) + ", four choices each. No pressure."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("Press Enter to start"))
	return b.String()
}

func pluralQuestions(n int) string {
	if n == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", n)
}
