package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"podium/bootstrap"
	"podium/config"
	"podium/web"
)

// newServeCmd creates the 'serve' subcommand.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.ParseEnvironment(envName)
			if err != nil {
				return err
			}

			app, err := bootstrap.NewApp(basePath, env, bootstrap.DefaultProviders()...)
			if err != nil {
				return err
			}
			defer app.Close()

			settings := config.ServerSettingsFromStore(app.Config)
			if err := settings.Validate(); err != nil {
				return fmt.Errorf("server settings: %w", err)
			}

			srv := web.NewServer(app.Renderer, app.Sugar, web.Options{
				Debug:             app.Debug,
				RequestsPerSecond: app.Config.GetInt("server.rate_limit.requests_per_second"),
				Burst:             app.Config.GetInt("server.rate_limit.burst"),
			})

			addr := fmt.Sprintf("%s:%d", settings.Host, settings.Port)
			errCh := make(chan error, 1)
			go func() {
				app.Sugar.Infof("Server listening on %s", addr)
				if err := srv.Start(addr); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				app.Sugar.Infow("Shutting down", "signal", sig.String())
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Stop(ctx); err != nil {
				return fmt.Errorf("stop server: %w", err)
			}
			app.Sugar.Info("Shutdown complete")
			return nil
		},
	}
}
