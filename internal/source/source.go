package source

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gen2brain/go-fitz"
)

// ErrUnsupported - формат файла обложки не поддерживается
var ErrUnsupported = errors.New("unsupported artwork format")

// Document - файл с обложкой: PDF-буклет, картинка или папка сканов.
// Первая страница считается лицевой стороной.
type Document interface {
	Pages() int
	Bounds(page int) (image.Rectangle, error)
	Render(page int, dpi int) (image.Image, error)
	Close() error
}

// Open выбирает реализацию по расширению; каталог открывается как набор сканов
func Open(path string) (Document, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case ext == ".pdf":
		return OpenPDF(path)
	case ext == "" || IsImage(path):
		return OpenImages(path)
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
}

// PDFDocument рендерит страницы буклета через MuPDF
type PDFDocument struct {
	path string

	// fitz.Document не потокобезопасен
	mu  sync.Mutex
	doc *fitz.Document
}

func OpenPDF(path string) (*PDFDocument, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &PDFDocument{doc: doc, path: path}, nil
}

func (d *PDFDocument) Pages() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.NumPage()
}

func (d *PDFDocument) Bounds(page int) (image.Rectangle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if page < 0 || page >= d.doc.NumPage() {
		return image.Rectangle{}, fmt.Errorf("page %d out of range in %s", page, d.path)
	}
	return d.doc.Bound(page)
}

func (d *PDFDocument) Render(page int, dpi int) (image.Image, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if page < 0 || page >= d.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range in %s", page, d.path)
	}
	return d.doc.ImageDPI(page, float64(dpi))
}

func (d *PDFDocument) Close() error {
	return d.doc.Close()
}

// FrontCover открывает документ и рендерит его первую страницу
func FrontCover(path string, dpi int) (image.Image, error) {
	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	if doc.Pages() == 0 {
		return nil, fmt.Errorf("%s: no pages", path)
	}
	return doc.Render(0, dpi)
}
