package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"

	"github.com/ivlev/salesreel/internal/cache"
	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/dataset"
)

// Generator produces a JSON document for a prompt, constrained by schema.
type Generator interface {
	Generate(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error)
}

// GeminiGenerator calls the Gemini API with structured output.
type GeminiGenerator struct {
	client  *genai.Client
	timeout time.Duration
}

func NewGeminiGenerator(ctx context.Context, apiKey string, timeout time.Duration) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("API key not found")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, timeout: timeout}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      genai.Ptr[float32](0.1),
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// GenAI asks a model to extract records from the raw sales table. The output
// is untrusted: every record is validated and box art links are dropped,
// since a model cannot be relied on to produce real image URLs.
type GenAI struct {
	Generator Generator
	Model     string
	Cache     cache.Cache
	TTL       time.Duration
	Logger    *log.Logger
}

func NewGenAI(gen Generator, model string, logger *log.Logger) *GenAI {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &GenAI{Generator: gen, Model: model, Logger: logger}
}

func (g *GenAI) Name() string { return config.ProviderGenAI }

func (g *GenAI) Load(ctx context.Context) ([]dataset.SalesRecord, error) {
	prompt := salesPrompt()
	key := cache.Key("genai", g.Model, prompt)

	if g.Cache != nil {
		var cached []dataset.SalesRecord
		err := cache.GetJSON(ctx, g.Cache, key, &cached)
		if err == nil {
			g.Logger.Debug("genai records from cache", "records", len(cached))
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			g.Logger.Warn("genai cache read failed", "err", err)
		}
	}

	text, err := g.Generator.Generate(ctx, g.Model, prompt, recordSchema())
	if err != nil {
		return nil, loadError(g.Name(), err)
	}
	if text == "" {
		return nil, loadError(g.Name(), errors.New("empty response from model"))
	}

	var records []dataset.SalesRecord
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, loadError(g.Name(), fmt.Errorf("decode model output: %w", err))
	}
	if len(records) == 0 {
		return nil, loadError(g.Name(), errors.New("model returned no records"))
	}
	for i := range records {
		records[i].BoxArtURL = ""
	}
	if err := dataset.ValidateAll(records); err != nil {
		return nil, loadError(g.Name(), err)
	}
	records = dataset.SortedBySales(records)

	if g.Cache != nil {
		if err := cache.SetJSON(ctx, g.Cache, key, records, g.TTL); err != nil {
			g.Logger.Warn("genai cache write failed", "err", err)
		}
	}
	g.Logger.Info("genai records generated", "model", g.Model, "records", len(records))
	return records, nil
}

func recordSchema() *genai.Schema {
	platforms := make([]string, len(dataset.Platforms))
	for i, p := range dataset.Platforms {
		platforms[i] = string(p)
	}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":   {Type: genai.TypeString, Description: "Full title of the game"},
				"year":    {Type: genai.TypeInteger, Description: "Release year"},
				"naSales": {Type: genai.TypeNumber, Description: "Sales in millions of units (float). Parse from the text provided."},
				"platform": {
					Type:        genai.TypeString,
					Description: "Original console platform code",
					Enum:        platforms,
				},
			},
			Required:         []string{"title", "year", "naSales", "platform"},
			PropertyOrdering: []string{"title", "year", "naSales", "platform"},
		},
	}
}

func salesPrompt() string {
	return `I will provide raw text containing sales data for 'The Legend of Zelda' series.

YOUR TASK:
1. Parse the text below to extract the Main Series games.
2. For each unique game title, extract the TOTAL sales figure (often the top row for that game group).
   If a Total is not explicitly labeled, sum the rows or take the main platform entry.
3. Convert sales numbers to Millions (e.g., 7,540,636 -> 7.54).
4. Assign the original platform code (NES, SNES, etc).

DATA SOURCE:
` + salesSource + `
OUTPUT RULES:
- Sort chronologically by Year.
- Do not invent sales numbers; use the text provided.
- Exclude "Switch 2" editions if they are minor regions (Japan only in text) unless it is the main platform.
- Ensure 'Breath of the Wild' includes the massive Switch sales (33m+) + Wii U.
- Ensure 'Tears of the Kingdom' is included.
- Ensure 'Echoes of Wisdom' is included.
`
}
