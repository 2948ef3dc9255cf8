package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/salesreel/internal/player"
)

func newTimelineCmd(g *globals) *cobra.Command {
	var vf videoFlags
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the phase windows and total duration",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(g, &vf)
			if err != nil {
				return err
			}
			records, err := loadRecords(ctx, cfg, loggerFromContext(ctx))
			if err != nil {
				return err
			}
			timing, err := cfg.ResolveTiming()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), player.TimelineTable(timing, records, cfg.FPS))
			return nil
		},
	}
	vf.register(cmd)
	return cmd
}
