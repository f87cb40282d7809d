package ui

import (
	"fmt"
	"strings"

	"github.com/tkowalski/go-htmx-examples/internal/models"
)

// IssueList renders an issue listing as styled terminal output: a title
// line for the repository, one line per issue with the state colored by
// whether it is open, and a help line with the total.
func IssueList(org, repo string, issues []models.Issue) string {
	var b strings.Builder

	b.WriteString(styles.title.Render(fmt.Sprintf("%s/%s", org, repo)))
	b.WriteString("\n")

	if len(issues) == 0 {
		b.WriteString(styles.help.Render("No issues found."))
		b.WriteString("\n")
		return b.String()
	}

	for _, issue := range issues {
		state := styles.ok.Render(issue.State)
		if issue.State != "open" {
			state = styles.warn.Render(issue.State)
		}

		b.WriteString(fmt.Sprintf("#%-6d %s  %s", issue.Number, state, issue.Title))
		b.WriteString("\n")
		b.WriteString(styles.help.Render(fmt.Sprintf("        %s · %d comments · %s",
			issue.User.Login, issue.Comments, issue.HTMLURL)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render(fmt.Sprintf("%d issues", len(issues))))
	b.WriteString("\n")

	return b.String()
}

// Success renders a one-line success notice.
func Success(msg string) string {
	return styles.ok.Render(msg)
}

// Error renders a one-line error notice.
func Error(msg string) string {
	return styles.err.Render(msg)
}

// Warn renders a one-line warning notice.
func Warn(msg string) string {
	return styles.warn.Render(msg)
}

// Help renders dimmed supplementary text.
func Help(msg string) string {
	return styles.help.Render(msg)
}
