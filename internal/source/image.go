package source

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// IsImage сообщает, умеет ли ImageDocument декодировать файл
func IsImage(name string) bool {
	return slices.Contains(imageExts, strings.ToLower(filepath.Ext(name)))
}

// ImageDocument - одна картинка или папка сканов, отсортированных по имени
type ImageDocument struct {
	paths []string
}

func OpenImages(path string) (*ImageDocument, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		if !IsImage(path) {
			return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
		}
		return &ImageDocument{paths: []string{path}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	doc := &ImageDocument{}
	for _, e := range entries {
		if !e.IsDir() && IsImage(e.Name()) {
			doc.paths = append(doc.paths, filepath.Join(path, e.Name()))
		}
	}
	slices.Sort(doc.paths)
	return doc, nil
}

func (d *ImageDocument) Pages() int {
	return len(d.paths)
}

func (d *ImageDocument) file(page int) (*os.File, error) {
	if page < 0 || page >= len(d.paths) {
		return nil, fmt.Errorf("image %d out of range", page)
	}
	return os.Open(d.paths[page])
}

// Bounds читает только заголовок файла
func (d *ImageDocument) Bounds(page int) (image.Rectangle, error) {
	f, err := d.file(page)
	if err != nil {
		return image.Rectangle{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("%s: %w", d.paths[page], err)
	}
	return image.Rect(0, 0, cfg.Width, cfg.Height), nil
}

// Render декодирует изображение; dpi для растровых файлов не важен
func (d *ImageDocument) Render(page int, _ int) (image.Image, error) {
	f, err := d.file(page)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.paths[page], err)
	}
	return img, nil
}

func (d *ImageDocument) Close() error {
	return nil
}
