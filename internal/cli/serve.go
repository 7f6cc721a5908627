package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/workbridge/client/internal/api"
	"github.com/workbridge/client/internal/app"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(a *app.App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local web portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.Config.Portal.Addr
			}

			e := api.NewRouter(api.Deps{
				Auth:     a.Auth,
				Profiles: a.Profiles,
				Jobs:     a.Jobs,
				Store:    a.Store,
				Remote:   a.Remote,
				Log:      a.Log.With().Str("component", "portal").Logger(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.Log.Info().Str("addr", addr).Str("api", a.Config.API.BaseURL).Msg("portal listening")
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("portal: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			a.Log.Info().Msg("shutting down portal")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default PORTAL_ADDR)")
	return cmd
}
