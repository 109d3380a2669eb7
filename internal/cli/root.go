package cli

import (
	"context"

	"github.com/saulo-duarte/quizgen-api/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the quizgen command tree. Each call gets its own viper
// instance so flags, env and config file never leak between runs.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:          "quizgen",
		Short:        "Multiple-choice quiz question generator",
		Long:         "quizgen prompts a pretrained text generation model for multiple-choice questions on a topic and serves them over HTTP.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newServeCmd(v))
	root.AddCommand(newGenerateCmd(v))
	root.AddCommand(newEncryptSecretCmd())

	return root
}

func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func loadSettings(cmd *cobra.Command, v *viper.Viper) (*config.Settings, error) {
	configFile, _ := cmd.Flags().GetString("config")
	return config.Load(v, configFile)
}
