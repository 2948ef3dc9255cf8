package cli

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivlev/salesreel/internal/engine"
)

func newStillCmd(g *globals) *cobra.Command {
	var (
		vf     videoFlags
		frame  int
		output string
	)
	cmd := &cobra.Command{
		Use:     "still",
		Short:   "Render a single frame as PNG",
		Example: "  salesreel still --frame 2015 -o summary.png",
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
			art, err := newArtLoader(cfg, logger)
			if err != nil {
				return err
			}
			stage, err := engine.NewStage(cfg, records, art)
			if err != nil {
				return err
			}

			img, err := stage.Still(frame)
			if err != nil {
				return err
			}
			if output == "" {
				output = fmt.Sprintf("frame_%05d.png", frame)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			pos := stage.Timing.Resolve(frame, stage.Scene.Len())
			logger.Info("frame written", "frame", frame, "position", pos, "path", output)
			return nil
		},
	}
	vf.register(cmd)
	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "frame number")
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG path (default: frame_<n>.png)")
	return cmd
}
