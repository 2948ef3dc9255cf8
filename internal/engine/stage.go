package engine

import (
	"fmt"
	"image"

	"github.com/ivlev/salesreel/internal/compose"
	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/director"
	"github.com/ivlev/salesreel/internal/effects"
	"github.com/ivlev/salesreel/internal/timeline"
)

// Stage связывает сцену, аниматор и художника: по номеру кадра даёт картинку.
// Stage не потокобезопасен, для параллельного рендера используйте Clone.
type Stage struct {
	Scene    *effects.Scene
	Animator *effects.Animator
	Painter  *compose.Painter
	Timing   timeline.Timing
}

func NewStage(cfg *config.Config, records []dataset.SalesRecord, art compose.ArtSource) (*Stage, error) {
	timing, err := cfg.ResolveTiming()
	if err != nil {
		return nil, err
	}
	chart, err := cfg.ChartVariant()
	if err != nil {
		return nil, err
	}
	painter, err := compose.NewPainter(cfg.Width, cfg.Height, cfg.FPS, art)
	if err != nil {
		return nil, err
	}
	// Камера по умолчанию; рендер может заменить её раскадровкой из файла
	sb, err := director.NewDirector(cfg.Width, cfg.Height).Build(records, timing, cfg.FPS)
	if err != nil {
		return nil, err
	}
	painter.Storyboard = sb
	return &Stage{
		Scene:    effects.NewScene(records),
		Animator: painter.NewAnimator(timing, chart),
		Painter:  painter,
		Timing:   timing,
	}, nil
}

// Duration - общее число кадров
func (s *Stage) Duration() int {
	return s.Timing.Duration(s.Scene.Len())
}

// Clone - копия с собственным художником (кэши шрифтов и картинок)
func (s *Stage) Clone() *Stage {
	c := *s
	c.Painter = s.Painter.Clone()
	return &c
}

// Render рисует кадр frame в dst
func (s *Stage) Render(frame int, dst *image.RGBA) error {
	st, err := s.Animator.AnimateFrame(s.Scene, frame)
	if err != nil {
		return err
	}
	return s.Painter.Paint(dst, st)
}

// Still рисует один кадр в новый буфер
func (s *Stage) Still(frame int) (*image.RGBA, error) {
	if frame < 0 || frame >= s.Duration() {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", frame, s.Duration())
	}
	img := image.NewRGBA(s.Painter.Bounds())
	return img, s.Render(frame, img)
}
