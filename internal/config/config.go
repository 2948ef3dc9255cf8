package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/salesreel/internal/analyzer"
	"github.com/ivlev/salesreel/internal/effects"
	"github.com/ivlev/salesreel/internal/timeline"
)

// Виды провайдеров данных и кэшей
const (
	ProviderStatic = "static"
	ProviderFile   = "file"
	ProviderGenAI  = "genai"
	ProviderMongo  = "mongo"

	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

type Config struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	FPS    int `yaml:"fps" toml:"fps"`

	// Timing - имя пресета; Frames, если задан, переопределяет пресет целиком
	Timing string          `yaml:"timing" toml:"timing"`
	Frames timeline.Timing `yaml:"frames" toml:"frames"`
	Chart  string          `yaml:"chart" toml:"chart"`

	AssetsDir    string `yaml:"assets_dir" toml:"assets_dir"`
	ArtFocus     string `yaml:"art_focus" toml:"art_focus"` // contrast или center
	OutputVideo  string `yaml:"output" toml:"output"`
	Storyboard   string `yaml:"storyboard" toml:"storyboard"`
	Workers      int    `yaml:"workers" toml:"workers"`
	Quality      int    `yaml:"quality" toml:"quality"`
	VideoEncoder string `yaml:"video_encoder" toml:"video_encoder"`
	AudioPath    string `yaml:"audio" toml:"audio"`
	ShowStats    bool   `yaml:"show_stats" toml:"show_stats"`
	BuildVersion string `yaml:"-" toml:"-"`

	Provider ProviderConfig `yaml:"provider" toml:"provider"`
	Cache    CacheConfig    `yaml:"cache" toml:"cache"`
	Server   ServerConfig   `yaml:"server" toml:"server"`
}

type ProviderConfig struct {
	Kind            string        `yaml:"kind" toml:"kind"`
	File            string        `yaml:"file" toml:"file"`
	Watch           bool          `yaml:"watch" toml:"watch"`
	Model           string        `yaml:"model" toml:"model"`
	APIKeyEnv       string        `yaml:"api_key_env" toml:"api_key_env"`
	MongoURI        string        `yaml:"mongo_uri" toml:"mongo_uri"`
	MongoDB         string        `yaml:"mongo_db" toml:"mongo_db"`
	MongoCollection string        `yaml:"mongo_collection" toml:"mongo_collection"`
	Timeout         time.Duration `yaml:"timeout" toml:"timeout"`
}

type CacheConfig struct {
	Kind      string        `yaml:"kind" toml:"kind"`
	Dir       string        `yaml:"dir" toml:"dir"`
	RedisAddr string        `yaml:"redis_addr" toml:"redis_addr"`
	TTL       time.Duration `yaml:"ttl" toml:"ttl"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" toml:"addr"`
}

// FrameParams - параметры рендера одного сегмента (окна фазы)
type FrameParams struct {
	Width, Height int
	FPS           int
	Start         int // первый кадр окна
	Frames        int // количество кадров
	Phase         string
	Index         int
}

// Duration - длительность сегмента в секундах
func (p FrameParams) Duration() float64 {
	if p.FPS <= 0 {
		return 0
	}
	return float64(p.Frames) / float64(p.FPS)
}

func Default() *Config {
	return &Config{
		Width:     1920,
		Height:    1080,
		FPS:       30,
		Timing:    timeline.DefaultPreset,
		Chart:     string(effects.ChartTimeline),
		AssetsDir: "assets",
		ArtFocus:  "contrast",
		Provider: ProviderConfig{
			Kind:            ProviderStatic,
			Model:           "gemini-2.5-flash",
			APIKeyEnv:       "GEMINI_API_KEY",
			MongoDB:         "salesreel",
			MongoCollection: "records",
			Timeout:         60 * time.Second,
		},
		Cache: CacheConfig{
			Kind: CacheFile,
			Dir:  filepath.Join(".cache", "salesreel"),
			TTL:  24 * time.Hour,
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// ResolveTiming возвращает длины фаз: явные кадры важнее пресета
func (c *Config) ResolveTiming() (timeline.Timing, error) {
	if c.Frames != (timeline.Timing{}) {
		return c.Frames, c.Frames.Validate()
	}
	name := c.Timing
	if name == "" {
		name = timeline.DefaultPreset
	}
	return timeline.Preset(name)
}

func (c *Config) ChartVariant() (effects.ChartVariant, error) {
	return effects.ParseChart(c.Chart)
}

// Validate проверяет конфигурацию целиком и возвращает все найденные ошибки
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", c.Width, c.Height))
	}
	if c.Width%2 != 0 || c.Height%2 != 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be even for yuv420p", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("invalid fps %d", c.FPS))
	}
	if _, err := c.ResolveTiming(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ChartVariant(); err != nil {
		errs = append(errs, err)
	}
	if _, err := analyzer.NewDetector(c.ArtFocus); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("invalid workers %d", c.Workers))
	}

	switch strings.ToLower(c.Provider.Kind) {
	case ProviderStatic, ProviderGenAI:
	case ProviderFile:
		if c.Provider.File == "" {
			errs = append(errs, errors.New("provider file requires provider.file"))
		}
	case ProviderMongo:
		if c.Provider.MongoURI == "" {
			errs = append(errs, errors.New("provider mongo requires provider.mongo_uri"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown provider kind %q", c.Provider.Kind))
	}

	switch strings.ToLower(c.Cache.Kind) {
	case CacheFile, CacheNone, "":
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			errs = append(errs, errors.New("cache redis requires cache.redis_addr"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown cache kind %q", c.Cache.Kind))
	}

	return errors.Join(errs...)
}

// AutoQuality подбирает качество под энкодер, если оно не задано явно
func (c *Config) AutoQuality() int {
	if c.Quality > 0 {
		return c.Quality
	}
	switch c.VideoEncoder {
	case "h264_videotoolbox":
		return 75 // Хорошее качество для VideoToolbox
	case "h264_nvenc":
		return 28 // Эквивалент CRF для NVENC
	default:
		return 23 // Стандартный CRF для x264
	}
}

// DefaultOutputPath генерирует имя видео в output/ с меткой времени
func DefaultOutputPath(now time.Time) string {
	return filepath.Join("output", fmt.Sprintf("salesreel_%s.mp4", now.Format("2006-01-02_15-04-05")))
}
