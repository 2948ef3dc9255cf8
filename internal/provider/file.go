package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/dataset"
)

// File reads records from a JSON or YAML document. The JSON layout is the
// one ExportJSON writes, so an exported file can be fed straight back in.
type File struct {
	Path string
	// Debounce collapses the burst of events an editor save produces.
	Debounce time.Duration
}

func NewFile(path string) *File {
	return &File{Path: path, Debounce: 300 * time.Millisecond}
}

func (f *File) Name() string { return config.ProviderFile }

func (f *File) Load(ctx context.Context) ([]dataset.SalesRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, loadError(f.Name(), err)
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, loadError(f.Name(), err)
	}
	records, err := decodeRecords(data, filepath.Ext(f.Path))
	if err != nil {
		return nil, loadError(f.Name(), fmt.Errorf("%s: %w", f.Path, err))
	}
	if err := dataset.ValidateAll(records); err != nil {
		return nil, loadError(f.Name(), fmt.Errorf("%s: %w", f.Path, err))
	}
	return records, nil
}

func decodeRecords(data []byte, ext string) ([]dataset.SalesRecord, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var records []dataset.SalesRecord
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}
		return records, nil
	default:
		return dataset.ParseJSON(data)
	}
}

// Watch calls onChange after the file is written, replaced or recreated,
// until ctx is cancelled. The parent directory is watched because editors
// usually save by renaming a temp file over the original.
func (f *File) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(f.Path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(f.Debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", f.Path, err)
		case <-timer.C:
			onChange()
		}
	}
}
