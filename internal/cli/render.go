package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/engine"
	"github.com/ivlev/salesreel/internal/system"
	"github.com/ivlev/salesreel/internal/video"
)

// autoAudio picks the newest file in audioDir.
const autoAudio = "auto"

const audioDir = "input/audio"

type renderOpts struct {
	video      videoFlags
	output     string
	workers    int
	quality    int
	encoder    string
	audio      string
	storyboard string
	stats      bool
}

func newRenderCmd(g *globals) *cobra.Command {
	opts := &renderOpts{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the full video with ffmpeg",
		Long: `Render draws every frame and encodes one ffmpeg segment per phase window
in parallel, then joins the segments into the final MP4. An optional
soundtrack is muxed in and trimmed to the video.`,
		Example: `  salesreel render
  salesreel render --preset 9:16 --timing cinematic --audio auto
  salesreel render --provider file --file records.yaml -o output/zelda.mp4 --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(g, &opts.video)
			if err != nil {
				return err
			}
			if err := opts.apply(cfg); err != nil {
				return err
			}

			system.InitResourceLimits(logger)
			if err := system.CheckFFmpeg(); err != nil {
				return err
			}
			if cfg.VideoEncoder == "" {
				cfg.VideoEncoder, _ = system.GetBestH264Encoder()
				if cfg.VideoEncoder != "libx264" {
					logger.Info("[*] Hardware acceleration detected", "encoder", cfg.VideoEncoder)
				}
			}

			records, err := loadRecords(ctx, cfg, logger)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				logger.Warn("no records, the video will have no slides")
			}

			art, err := newArtLoader(cfg, logger)
			if err != nil {
				return err
			}
			prog := newProgress(logger)
			loaded := art.Preload(records)
			prog.done(fmt.Sprintf("Loaded %d of %d box art images", loaded, len(records)))

			stage, err := engine.NewStage(cfg, records, art)
			if err != nil {
				return err
			}
			project := engine.NewVideoProject(cfg, stage, &video.FFmpegEncoder{}, logger)
			if _, err := project.Run(ctx); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			logger.Info("[+++] Success!", "output", cfg.OutputVideo)
			return nil
		},
	}

	opts.video.register(cmd)
	fl := cmd.Flags()
	fl.StringVarP(&opts.output, "output", "o", "", "output video (default: output/salesreel_<time>.mp4)")
	fl.IntVar(&opts.workers, "workers", 0, "parallel segments (default: CPU count, reduced on low memory)")
	fl.IntVar(&opts.quality, "quality", 0, "video quality (0 = auto; x264: CRF 1-51, VideoToolbox: bitrate = Q*100kbit/s)")
	fl.StringVar(&opts.encoder, "encoder", "", "ffmpeg H.264 encoder (default: best available)")
	fl.StringVar(&opts.audio, "audio", "", `soundtrack path, or "auto" for the newest file in `+audioDir)
	fl.StringVar(&opts.storyboard, "storyboard", "", `camera storyboard YAML, or "latest"`)
	fl.BoolVar(&opts.stats, "stats", false, "print a performance report and append it to benchmark.log")
	return cmd
}

func (o *renderOpts) apply(cfg *config.Config) error {
	if o.output != "" {
		cfg.OutputVideo = o.output
	}
	if cfg.OutputVideo == "" {
		cfg.OutputVideo = config.DefaultOutputPath(time.Now())
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	if o.quality > 0 {
		cfg.Quality = o.quality
	}
	if o.encoder != "" {
		cfg.VideoEncoder = o.encoder
	}
	if o.storyboard != "" {
		cfg.Storyboard = o.storyboard
	}
	if o.stats {
		cfg.ShowStats = true
	}
	if o.audio != "" {
		cfg.AudioPath = o.audio
	}
	if cfg.AudioPath == autoAudio {
		latest, err := system.FindLatestAudio(audioDir)
		if err != nil {
			return fmt.Errorf("--audio auto: %w", err)
		}
		cfg.AudioPath = latest
	}
	if cfg.AudioPath != "" {
		if _, err := os.Stat(cfg.AudioPath); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("audio %s not found", cfg.AudioPath)
		}
	}
	return nil
}
