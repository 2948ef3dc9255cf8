package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/system"
)

// FrameFunc рисует кадр frame в dst. Буфер переиспользуется между кадрами.
type FrameFunc func(frame int, dst *image.RGBA) error

type VideoEncoder interface {
	EncodeSegment(ctx context.Context, videoPath string, params config.FrameParams, encoderName string, quality int, render FrameFunc) error
	Concatenate(ctx context.Context, segmentPaths []string, finalPath string, tmpDir string, params config.Config) error
}

type FFmpegEncoder struct{}

// EncodeSegment запускает ffmpeg на одно окно фазы и передаёт ему кадры
// окна через stdin в формате rawvideo.
func (e *FFmpegEncoder) EncodeSegment(
	ctx context.Context,
	videoPath string,
	params config.FrameParams,
	encoderName string,
	quality int,
	render FrameFunc,
) error {
	args := e.buildFFmpegArgs(videoPath, params, encoderName, quality)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start error: %w", err)
	}

	// Один буфер на сегмент: кадр целиком перерисовывается
	buf := system.GetImage(image.Rect(0, 0, params.Width, params.Height))
	defer system.PutImage(buf)

	writeErr := e.writeFrames(stdin, params, buf, render)
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		if writeErr != nil {
			return writeErr
		}
		return fmt.Errorf("ffmpeg wait error: %w\nLog: %s", err, out.String())
	}
	return writeErr
}

func (e *FFmpegEncoder) writeFrames(w io.Writer, params config.FrameParams, buf *image.RGBA, render FrameFunc) error {
	for f := params.Start; f < params.Start+params.Frames; f++ {
		if err := render(f, buf); err != nil {
			return fmt.Errorf("render frame %d: %w", f, err)
		}
		if err := writeRawRGBA(w, buf); err != nil {
			return fmt.Errorf("write raw error: %w", err)
		}
	}
	return nil
}

func (e *FFmpegEncoder) buildFFmpegArgs(
	videoPath string,
	params config.FrameParams,
	encoderName string,
	quality int,
) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"-framerate", fmt.Sprintf("%d", params.FPS),
		"-i", "-",
		"-frames:v", fmt.Sprintf("%d", params.Frames),
		"-pix_fmt", "yuv420p",
		"-c:v", encoderName,
	}
	args = append(args, qualityArgs(encoderName, quality)...)
	args = append(args, videoPath)
	return args
}

// qualityArgs - качество в зависимости от энкодера
func qualityArgs(encoderName string, quality int) []string {
	switch encoderName {
	case "h264_videotoolbox":
		// VideoToolbox часто не поддерживает -q:v напрямую на всех версиях. Используем битрейт.
		bitrate := quality * 100 // кбит/с. 75 -> 7.5Мбит/с
		return []string{"-b:v", fmt.Sprintf("%dk", bitrate)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

func writeRawRGBA(w io.Writer, rgba *image.RGBA) error {
	bounds := rgba.Bounds()
	// Буфер из пула всегда плотный, но подстрахуемся на случай чужих кадров
	if rgba.Stride == bounds.Dx()*4 {
		_, err := w.Write(rgba.Pix[:bounds.Dy()*rgba.Stride])
		return err
	}
	for y := 0; y < bounds.Dy(); y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+bounds.Dx()*4]
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Concatenate склеивает сегменты concat-демультиплексором без перекодирования.
// Саундтрек, если задан, накладывается и обрезается по длине видео.
func (e *FFmpegEncoder) Concatenate(ctx context.Context, segmentPaths []string, finalPath string, tmpDir string, params config.Config) error {
	if len(segmentPaths) == 0 {
		return fmt.Errorf("nothing to concatenate")
	}

	concatFilePath := filepath.Join(tmpDir, "inputs.txt")
	f, err := os.Create(concatFilePath)
	if err != nil {
		return err
	}
	for _, p := range segmentPaths {
		absPath, _ := filepath.Abs(p)
		fmt.Fprintf(f, "file '%s'\n", absPath)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if dir := filepath.Dir(finalPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", buildConcatArgs(concatFilePath, finalPath, params.AudioPath)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat error: %v, output: %s", err, string(out))
	}
	return nil
}

func buildConcatArgs(listPath, finalPath, audioPath string) []string {
	args := []string{"-y", "-f", "concat", "-safe", "0", "-i", listPath}
	if audioPath == "" {
		return append(args, "-c", "copy", "-movflags", "+faststart", finalPath)
	}
	return append(args,
		"-i", audioPath,
		"-map", "0:v", "-map", "1:a",
		"-c:v", "copy", "-c:a", "aac", "-b:a", "192k",
		"-shortest", "-movflags", "+faststart",
		finalPath,
	)
}
