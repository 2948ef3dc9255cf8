package cli

import (
	"github.com/spf13/cobra"

	"github.com/ivlev/salesreel/internal/compose"
	"github.com/ivlev/salesreel/internal/effects"
	"github.com/ivlev/salesreel/internal/player"
)

func newPlayCmd(g *globals) *cobra.Command {
	var vf videoFlags
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the animation in the terminal",
		Long:  "Play steps through the video at its frame rate and shows each phase's animated values. Keys: space pause, ←/→ seek 1s, ,/. step a frame, r replay, q quit.",
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
			chart, err := cfg.ChartVariant()
			if err != nil {
				return err
			}
			w, h := compose.LogicalSize(cfg.Width, cfg.Height)
			anim := effects.NewAnimator(cfg.FPS, w, h, timing, chart)
			return player.Run(effects.NewScene(records), anim)
		},
	}
	vf.register(cmd)
	return cmd
}
