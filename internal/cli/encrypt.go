package cli

import (
	"fmt"

	"github.com/saulo-duarte/quizgen-api/internal/config"
	"github.com/spf13/cobra"
)

func newEncryptSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt-secret <value>",
		Short: "Encrypt an API key with CRYPTO_KEY for use in QUIZGEN_MODEL_API_KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := config.CryptoKey()
			if err != nil {
				return err
			}
			ciphertext, err := config.Encrypt(key, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.EncryptedPrefix+ciphertext)
			return nil
		},
	}
}
