package source

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"golang.org/x/sync/singleflight"

	"github.com/ivlev/salesreel/internal/analyzer"
	"github.com/ivlev/salesreel/internal/dataset"
)

var (
	// ErrNoArt - у записи нет ссылки на обложку
	ErrNoArt = errors.New("no artwork reference")
	// ErrRemoteArt - удалённые ссылки не загружаются, рисуется заглушка
	ErrRemoteArt = errors.New("remote artwork is not fetched")
)

// BoxArtAspect - пропорции панели обложки (ширина/высота)
const BoxArtAspect = 3.0 / 4.0

// ArtLoader загружает обложки и картинки консолей из каталога ассетов.
// Безопасен для одновременного использования воркерами рендера.
type ArtLoader struct {
	AssetsDir string
	DPI       int
	Aspect    float64
	Detector  analyzer.Detector
	Logger    *log.Logger

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]image.Image
}

func NewArtLoader(assetsDir string, logger *log.Logger) *ArtLoader {
	return &ArtLoader{
		AssetsDir: assetsDir,
		DPI:       150,
		Aspect:    BoxArtAspect,
		Detector:  analyzer.NewContrastDetector(),
		Logger:    logger,
		cache:     make(map[string]image.Image),
	}
}

// BoxArt возвращает обложку, обрезанную до Aspect вокруг самой
// детализированной области.
func (l *ArtLoader) BoxArt(ref string) (image.Image, error) {
	if ref == "" {
		return nil, ErrNoArt
	}
	return l.load("art:"+ref, func() (image.Image, error) {
		img, err := l.open(ref)
		if err != nil {
			return nil, err
		}
		if l.Aspect <= 0 {
			return img, nil
		}
		focus := img.Bounds()
		if l.Detector != nil {
			focus = analyzer.Salient(l.Detector, img)
		}
		crop := analyzer.CropTo(img.Bounds(), focus, l.Aspect)
		return imaging.Crop(img, crop), nil
	})
}

// Console возвращает картинку консоли: consoles/<platform>.png или .jpg
func (l *ArtLoader) Console(p dataset.Platform) (image.Image, error) {
	return l.load("console:"+string(p), func() (image.Image, error) {
		slug := ConsoleSlug(p)
		for _, ext := range []string{".png", ".jpg", ".jpeg"} {
			name := filepath.Join("consoles", slug+ext)
			if _, err := os.Stat(filepath.Join(l.AssetsDir, name)); err == nil {
				return l.open(name)
			}
		}
		return nil, fmt.Errorf("console %s: %w", p, os.ErrNotExist)
	})
}

// Preload загружает обложки всех записей заранее, ошибки только логируются:
// для отсутствующих обложек рисуется заглушка.
func (l *ArtLoader) Preload(records []dataset.SalesRecord) (loaded int) {
	for _, r := range records {
		if _, err := l.BoxArt(r.BoxArtURL); err != nil {
			if l.Logger != nil {
				l.Logger.Debug("box art unavailable", "title", r.Title, "ref", r.BoxArtURL, "err", err)
			}
			continue
		}
		loaded++
	}
	return loaded
}

// ConsoleSlug - имя файла для платформы: "Wii U" -> "wii_u"
func ConsoleSlug(p dataset.Platform) string {
	return strings.ReplaceAll(strings.ToLower(string(p)), " ", "_")
}

func (l *ArtLoader) load(key string, fn func() (image.Image, error)) (image.Image, error) {
	l.mu.RLock()
	img, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		return img, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		img, err := fn()
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[key] = img
		l.mu.Unlock()
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

// open разрешает ссылку относительно каталога ассетов и берёт лицевую страницу
func (l *ArtLoader) open(ref string) (image.Image, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return nil, ErrRemoteArt
	}
	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.AssetsDir, ref)
	}
	return FrontCover(path, l.DPI)
}
