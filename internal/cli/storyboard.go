package cli

import (
	"github.com/spf13/cobra"

	"github.com/ivlev/salesreel/internal/director"
)

func newStoryboardCmd(g *globals) *cobra.Command {
	var (
		vf     videoFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "storyboard",
		Short: "Write the camera storyboard as YAML",
		Long: `Storyboard writes the scene list and camera keyframes the renderer would use.
Edit the file and pass it back with "render --storyboard <file>" or
"render --storyboard latest".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(g, &vf)
			if err != nil {
				return err
			}
			records, err := loadRecords(ctx, cfg, logger)
			if err != nil {
				return err
			}
			timing, err := cfg.ResolveTiming()
			if err != nil {
				return err
			}
			sb, err := director.NewDirector(cfg.Width, cfg.Height).Build(records, timing, cfg.FPS)
			if err != nil {
				return err
			}

			if output == "" {
				output = director.GenerateStoryboardPath(director.StoryboardDir)
			}
			if err := director.WriteStoryboard(sb, output); err != nil {
				return err
			}
			logger.Info("storyboard written", "scenes", len(sb.Scenes), "frames", sb.DurationFrames, "path", output)
			return nil
		},
	}
	vf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "YAML path (default: storyboards/storyboard_<time>.yaml)")
	return cmd
}
