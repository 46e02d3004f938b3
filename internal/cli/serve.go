package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/decker502/particlestudio/internal/assets"
	"github.com/decker502/particlestudio/internal/config"
	"github.com/decker502/particlestudio/internal/server"
)

// newServeCmd creates the serve command: the editor backend HTTP API.
func newServeCmd() *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the editor backend HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				settings.Listen = listen
			}
			logger.SetLevel(parseLevel(settings.LogLevel))

			srv := server.New(logger, assets.NewStore(), settings.Canvas)
			httpSrv := &http.Server{
				Addr:              settings.Listen,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", settings.Listen)
				errc <- httpSrv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := httpSrv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
				return ctx.Err()
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "studio.toml", "settings file path")
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides settings file)")
	return cmd
}
