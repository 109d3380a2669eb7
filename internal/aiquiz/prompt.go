package aiquiz

import "fmt"

func BuildPrompt(topic string) string {
	return fmt.Sprintf(
		"generate question: Create a multiple-choice question about %s "+
			"with 4 options and the correct answer.",
		topic,
	)
}
