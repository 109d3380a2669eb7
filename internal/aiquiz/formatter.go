package aiquiz

import (
	"regexp"
	"strings"
)

const (
	formatVariesNote = "\n(Note: Output format may vary, please verify!)"
	parseFailedNote  = "\n(Note: Unable to parse output, please verify!)"
)

// Labels are case-sensitive; every segment but the last stops at the next label.
var questionPattern = regexp.MustCompile(
	`(?s)^(Question:.*?)(A\).*?)(B\).*?)(C\).*?)(D\).*?)(Correct Answer:.*)`,
)

// FormatQuestion renders model output as six lines (question, four options,
// answer). Output that does not fit the template is returned as is with a
// note appended. It never panics.
func FormatQuestion(text string) string {
	return formatWith(questionPattern.FindStringSubmatch, text)
}

func formatWith(match func(string) []string, text string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = text + parseFailedNote
		}
	}()

	groups := match(text)
	if len(groups) != 7 {
		return text + formatVariesNote
	}

	parts := make([]string, 0, 6)
	for _, g := range groups[1:] {
		parts = append(parts, strings.TrimSpace(g))
	}
	return strings.Join(parts, "\n")
}
