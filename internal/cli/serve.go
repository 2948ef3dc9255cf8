package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/salesreel/internal/server"
)

func newServeCmd(g *globals) *cobra.Command {
	var (
		vf   videoFlags
		addr string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the browser preview",
		Long: `Serve starts the preview page with the player, the record table and the
download actions. Records load in the background; a failed load shows an
error with a retry button. With the file provider and provider.watch set,
the page follows edits to the records file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(g, &vf)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			loader, closeFn, err := newLoader(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer closeFn()

			art, err := newArtLoader(cfg, logger)
			if err != nil {
				return err
			}
			srv := server.New(cfg, loader, art, logger)

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				// a failed load is shown on the page, not fatal
				_ = loader.Reload(ctx)
				return nil
			})
			if cfg.Provider.Watch {
				eg.Go(func() error { return loader.Watch(ctx) })
			}
			eg.Go(func() error { return srv.ListenAndServe(ctx, cfg.Server.Addr) })
			return eg.Wait()
		},
	}
	vf.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
