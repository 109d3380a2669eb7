package cli

import (
	"errors"
	"fmt"

	"github.com/saulo-duarte/quizgen-api/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-api/internal/container"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	var (
		topic string
		count int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate questions once and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, v)
			if err != nil {
				return err
			}

			c, err := container.New(cmd.Context(), settings)
			if err != nil {
				return err
			}

			questions, err := c.AIQuizContainer.Service.GenerateQuestions(cmd.Context(), aiquiz.QuizRequest{
				Topic:        topic,
				NumQuestions: count,
			})
			if errors.Is(err, aiquiz.ErrInvalidRequest) {
				return errors.New(aiquiz.InvalidRequestDetail)
			}
			if err != nil {
				return fmt.Errorf("generating questions: %w", err)
			}

			out := cmd.OutOrStdout()
			for i, q := range questions {
				fmt.Fprintf(out, "%d.\n%s\n\n", i+1, q)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Quiz topic")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of questions (1-5)")
	return cmd
}
