package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/charliek/logview/internal/api"
	"github.com/charliek/logview/internal/constants"
)

// serveCmd runs the read-only HTTP API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the log history over a read-only HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		handlers := api.NewHandlers(deps.reconciler, deps.formatter, deps.source, deps.window, deps.logger)
		server := api.NewServer(api.ServerConfig{
			Host:  deps.cfg.API.Host,
			Port:  deps.cfg.API.Port,
			Token: deps.cfg.API.Token,
		}, handlers)

		errCh := make(chan error, 1)
		go func() {
			deps.logger.Info("api server listening", "addr", server.Addr())
			errCh <- server.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case sig := <-sigCh:
			deps.logger.Info("shutting down", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
