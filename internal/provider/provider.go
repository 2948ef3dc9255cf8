// Package provider fetches the sales records a video is rendered from.
//
// The backend is chosen once, from config provider.kind, by New. Every
// failure surfaces as a *LoadError so callers have a single class to match.
package provider

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ivlev/salesreel/internal/cache"
	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/dataset"
)

// Provider loads the full record list. Implementations do not retry.
type Provider interface {
	Name() string
	Load(ctx context.Context) ([]dataset.SalesRecord, error)
}

// LoadError is returned for any failure to obtain records.
type LoadError struct {
	Provider string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load records from %s: %v", e.Provider, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadError(name string, err error) error {
	if err == nil {
		return nil
	}
	return &LoadError{Provider: name, Err: err}
}

// New builds the provider selected by cfg.Kind. c may be nil; only the genai
// provider caches, keeping results for ttl.
func New(ctx context.Context, cfg config.ProviderConfig, c cache.Cache, ttl time.Duration, logger *log.Logger) (Provider, error) {
	switch strings.ToLower(cfg.Kind) {
	case config.ProviderStatic, "":
		return Static{}, nil
	case config.ProviderFile:
		return NewFile(cfg.File), nil
	case config.ProviderGenAI:
		gen, err := NewGeminiGenerator(ctx, os.Getenv(cfg.APIKeyEnv), cfg.Timeout)
		if err != nil {
			return nil, loadError(config.ProviderGenAI, err)
		}
		p := NewGenAI(gen, cfg.Model, logger)
		p.Cache, p.TTL = c, ttl
		return p, nil
	case config.ProviderMongo:
		return NewMongo(cfg.MongoURI, cfg.MongoDB, cfg.MongoCollection, cfg.Timeout), nil
	}
	return nil, fmt.Errorf("unknown provider kind %q", cfg.Kind)
}

// Static serves the built-in records.
type Static struct{}

func (Static) Name() string { return config.ProviderStatic }

func (Static) Load(ctx context.Context) ([]dataset.SalesRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, loadError(config.ProviderStatic, err)
	}
	return dataset.Fixture(), nil
}
