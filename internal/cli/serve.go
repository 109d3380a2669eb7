package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/quizgen-api/internal/config"
	"github.com/saulo-duarte/quizgen-api/internal/container"
	"github.com/saulo-duarte/quizgen-api/internal/router"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, v)
		},
	}
	cmd.Flags().String("listen", "", "Address to listen on (default :8080)")
	_ = v.BindPFlag("listen_address", cmd.Flags().Lookup("listen"))
	return cmd
}

func runServe(cmd *cobra.Command, v *viper.Viper) error {
	settings, err := loadSettings(cmd, v)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, settings)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: settings.ListenAddress,
		Handler: router.New(router.RouterConfig{
			AIQuizHandler:  c.AIQuizContainer.Handler,
			AllowedOrigins: settings.CORS.AllowedOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log := config.Logger()
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
