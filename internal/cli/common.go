package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ivlev/salesreel/internal/analyzer"
	"github.com/ivlev/salesreel/internal/cache"
	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/provider"
	"github.com/ivlev/salesreel/internal/source"
	"github.com/ivlev/salesreel/internal/timeline"
)

// videoFlags are the output settings shared by every command that draws.
type videoFlags struct {
	width, height, fps int
	preset             string
	timing             string
	chart              string
	assets             string
	provider           string
	file               string
}

func (f *videoFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.width, "width", 0, "frame width")
	fl.IntVar(&f.height, "height", 0, "frame height")
	fl.IntVar(&f.fps, "fps", 0, "frames per second")
	fl.StringVar(&f.preset, "preset", "", "format preset: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram)")
	fl.StringVar(&f.timing, "timing", "", "timing preset: preview, cinematic, slides")
	fl.StringVar(&f.chart, "chart", "", "summary chart: timeline, compact, platform")
	fl.StringVar(&f.assets, "assets", "", "directory with box-art and consoles/")
	fl.StringVar(&f.provider, "provider", "", "record provider: static, file, genai, mongo")
	fl.StringVar(&f.file, "file", "", "records file for the file provider (JSON or YAML)")
}

// apply overrides the config with the flags the user actually set.
func (f *videoFlags) apply(cfg *config.Config) {
	switch f.preset {
	case "16:9":
		cfg.Width, cfg.Height = 1920, 1080
	case "9:16":
		cfg.Width, cfg.Height = 1080, 1920
	case "4:5":
		cfg.Width, cfg.Height = 1080, 1350
	}
	if f.width > 0 {
		cfg.Width = f.width
	}
	if f.height > 0 {
		cfg.Height = f.height
	}
	if f.fps > 0 {
		cfg.FPS = f.fps
	}
	if f.timing != "" {
		cfg.Timing = f.timing
		cfg.Frames = timeline.Timing{}
	}
	if f.chart != "" {
		cfg.Chart = f.chart
	}
	if f.assets != "" {
		cfg.AssetsDir = f.assets
	}
	if f.file != "" {
		cfg.Provider.File = f.file
		if f.provider == "" {
			cfg.Provider.Kind = config.ProviderFile
		}
	}
	if f.provider != "" {
		cfg.Provider.Kind = f.provider
	}
}

func loadConfig(g *globals, vf *videoFlags) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if vf != nil {
		vf.apply(cfg)
	}
	cfg.BuildVersion = version
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLoader wires the configured cache and provider into a Loader. Only the
// genai provider caches, so other providers skip opening one. The returned
// close function releases the cache.
func newLoader(ctx context.Context, cfg *config.Config, logger *log.Logger) (*provider.Loader, func(), error) {
	var c cache.Cache = cache.NewNullCache()
	if strings.EqualFold(cfg.Provider.Kind, config.ProviderGenAI) {
		opened, err := cache.New(ctx, cfg.Cache)
		if err != nil {
			logger.Warn("cache unavailable, continuing without it", "kind", cfg.Cache.Kind, "err", err)
		} else {
			c = opened
		}
	}
	p, err := provider.New(ctx, cfg.Provider, c, cfg.Cache.TTL, logger)
	if err != nil {
		c.Close()
		return nil, nil, err
	}
	return provider.NewLoader(p, logger), func() { c.Close() }, nil
}

// newArtLoader builds the box-art loader with the configured focus detector.
func newArtLoader(cfg *config.Config, logger *log.Logger) (*source.ArtLoader, error) {
	det, err := analyzer.NewDetector(cfg.ArtFocus)
	if err != nil {
		return nil, err
	}
	art := source.NewArtLoader(cfg.AssetsDir, logger)
	art.Detector = det
	return art, nil
}

// loadRecords runs one load for commands that need the data up front.
func loadRecords(ctx context.Context, cfg *config.Config, logger *log.Logger) ([]dataset.SalesRecord, error) {
	loader, closeFn, err := newLoader(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	if err := loader.Reload(ctx); err != nil {
		return nil, err
	}
	return loader.Records(), nil
}
