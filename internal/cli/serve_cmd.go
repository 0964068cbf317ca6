package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/advisor/internal/domain"
	"github.com/alexanderramin/advisor/internal/logging"
	"github.com/alexanderramin/advisor/internal/server"
)

const defaultListenAddr = ":8080"

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve recommendations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.History == nil {
				return errNoDatabase
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			advisor := app.Advisor(nil)
			logging.Info().
				Str("catalog", advisor.Catalog().Version()).
				Int("electives", advisor.Catalog().Len()).
				Msg("serving recommendations")

			srv := server.New(advisor, logging.With("server"))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", domain.CoalesceStr(app.ListenAddr, defaultListenAddr), "Listen address")
	return cmd
}
