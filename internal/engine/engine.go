package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/director"
	"github.com/ivlev/salesreel/internal/system"
	"github.com/ivlev/salesreel/internal/video"
)

// LatestStoryboard - значение config.Storyboard для самого свежего файла
const LatestStoryboard = "latest"

type VideoProject struct {
	Config  *config.Config
	Stage   *Stage
	Encoder video.VideoEncoder
	Logger  *log.Logger
	JobID   string
	tempDir string
}

func NewVideoProject(cfg *config.Config, stage *Stage, ve video.VideoEncoder, logger *log.Logger) *VideoProject {
	return &VideoProject{
		Config:  cfg,
		Stage:   stage,
		Encoder: ve,
		Logger:  logger,
		JobID:   uuid.NewString(),
	}
}

// Report - итоги рендера
type Report struct {
	JobID        string
	Output       string
	Frames       int
	Segments     int
	Workers      int
	Total        time.Duration
	Rendering    time.Duration
	Concat       time.Duration
	EffectiveFPS float64
	Host         system.Snapshot
}

func (p *VideoProject) Run(ctx context.Context) (*Report, error) {
	startTime := time.Now()
	logger := p.Logger.With("job", p.JobID[:8])

	if err := p.loadStoryboard(); err != nil {
		return nil, err
	}

	var err error
	p.tempDir, err = os.MkdirTemp("", "salesreel_")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(p.tempDir)

	n := p.Stage.Scene.Len()
	windows := p.Stage.Timing.Windows(n)
	total := p.Stage.Duration()
	workers := system.RecommendedWorkers(p.Config.Workers)
	if workers > len(windows) {
		workers = len(windows)
	}

	logger.Info("--- [PROJECT: SALES REEL] ---")
	logger.Info("source", "records", n, "frames", total, "seconds", float64(total)/float64(p.Config.FPS))
	logger.Info("output", "size", fmt.Sprintf("%dx%d", p.Config.Width, p.Config.Height), "fps", p.Config.FPS, "encoder", p.Config.VideoEncoder, "workers", workers)

	if p.Config.AudioPath != "" {
		audioDur, err := system.GetAudioDuration(p.Config.AudioPath)
		videoDur := float64(total) / float64(p.Config.FPS)
		switch {
		case err != nil:
			logger.Warn("could not probe audio", "path", p.Config.AudioPath, "err", err)
		case audioDur < videoDur:
			logger.Warn("audio is shorter than the video, output will be trimmed", "audio", audioDur, "video", videoDur)
		default:
			logger.Info("audio", "path", p.Config.AudioPath, "seconds", audioDur)
		}
	}

	results := make([]string, len(windows))
	var ready atomic.Int32

	// Каждое окно фазы - отдельный сегмент со своим процессом ffmpeg
	renderStart := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, w := range windows {
		g.Go(func() error {
			stage := p.Stage.Clone()
			segPath := filepath.Join(p.tempDir, fmt.Sprintf("s%03d.mp4", i))
			params := config.FrameParams{
				Width:  p.Config.Width,
				Height: p.Config.Height,
				FPS:    p.Config.FPS,
				Start:  w.Start,
				Frames: w.Length,
				Phase:  w.Phase.String(),
				Index:  w.Index,
			}
			err := p.Encoder.EncodeSegment(gctx, segPath, params, p.Config.VideoEncoder, p.Config.AutoQuality(), stage.Render)
			if err != nil {
				return fmt.Errorf("segment %d (%s): %w", i, w.Phase, err)
			}
			results[i] = segPath
			logger.Info(fmt.Sprintf("[>] Ready: %d/%d", ready.Add(1), len(windows)), "phase", w.Phase, "index", w.Index)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	renderTime := time.Since(renderStart)

	// Проверяем, все ли сегменты готовы
	for i, r := range results {
		if r == "" {
			return nil, fmt.Errorf("segment %d was not created, check the ffmpeg log", i)
		}
	}

	logger.Info("[*] Assembling final video...")
	concatStart := time.Now()
	if err := p.Encoder.Concatenate(ctx, results, p.Config.OutputVideo, p.tempDir, *p.Config); err != nil {
		return nil, fmt.Errorf("final assembly failed: %w", err)
	}

	totalTime := time.Since(startTime)
	report := &Report{
		JobID:        p.JobID,
		Output:       p.Config.OutputVideo,
		Frames:       total,
		Segments:     len(windows),
		Workers:      workers,
		Total:        totalTime,
		Rendering:    renderTime,
		Concat:       time.Since(concatStart),
		EffectiveFPS: float64(total) / totalTime.Seconds(),
		Host:         system.TakeSnapshot(),
	}

	if p.Config.ShowStats {
		fmt.Print(report.String(p.Config.BuildVersion))
		if err := report.AppendLog("benchmark.log", p.Config.BuildVersion); err != nil {
			logger.Warn("could not write benchmark.log", "err", err)
		}
	}
	return report, nil
}

// loadStoryboard подменяет камеру раскадровкой из файла, если она задана.
// Без файла остаётся раскадровка режиссёра, собранная в NewStage.
func (p *VideoProject) loadStoryboard() error {
	path := p.Config.Storyboard
	n := p.Stage.Scene.Len()
	if path == "" {
		return nil
	}

	if path == LatestStoryboard {
		latest, err := director.FindLatestStoryboard(director.StoryboardDir)
		if err != nil {
			return err
		}
		path = latest
	}
	sb, err := director.ReadStoryboard(path)
	if err != nil {
		return fmt.Errorf("read storyboard: %w", err)
	}
	if err := sb.Validate(n, p.Stage.Timing, p.Config.FPS); err != nil {
		return fmt.Errorf("storyboard %s: %w", path, err)
	}
	p.Logger.Info("[*] Using storyboard", "path", path)
	p.Stage.Painter.Storyboard = sb
	return nil
}

func (r *Report) String(build string) string {
	gets, allocs := system.PoolStats()
	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Job: %s\n"+
			"Frames: %d in %d segments (%d workers)\n"+
			"Total Time: %.2fs\n"+
			"Rendering+Encoding: %.2fs\n"+
			"Concatenation: %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"Frame buffers: %d reused of %d\n"+
			"Host: %s\n"+
			"----------------------------\n",
		build, r.JobID, r.Frames, r.Segments, r.Workers,
		r.Total.Seconds(), r.Rendering.Seconds(), r.Concat.Seconds(), r.EffectiveFPS,
		gets-allocs, gets, r.Host,
	)
}

// AppendLog дописывает строку отчёта в файл бенчмарков
func (r *Report) AppendLog(path, build string) error {
	logEntry := fmt.Sprintf("[%s] Build: %s | Job: %s | Frames: %d | Total: %.2fs | Render: %.2fs | FPS: %.2f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		build,
		r.JobID,
		r.Frames,
		r.Total.Seconds(),
		r.Rendering.Seconds(),
		r.EffectiveFPS,
	)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(logEntry)
	return err
}
