package main

import (
	"os"

	"github.com/saulo-duarte/quizgen-api/internal/cli"
)

// @title       Quiz Question Generator API
// @version     1.0
// @description Generates multiple-choice questions on a topic with a pretrained text generation model.
// @BasePath    /
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
