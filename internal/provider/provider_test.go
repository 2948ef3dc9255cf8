package provider

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/ivlev/salesreel/internal/cache"
	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/dataset"
)

func TestStatic(t *testing.T) {
	records, err := Static{}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 19)
	assert.NoError(t, dataset.ValidateAll(records))
}

func TestNewSelectsByKind(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		kind string
		want string
	}{
		{config.ProviderStatic, "provider.Static"},
		{"", "provider.Static"},
		{config.ProviderFile, "*provider.File"},
		{config.ProviderMongo, "*provider.Mongo"},
	}
	for _, tt := range tests {
		p, err := New(ctx, config.ProviderConfig{Kind: tt.kind, File: "x.json", MongoURI: "mongodb://localhost"}, nil, 0, nil)
		require.NoError(t, err, tt.kind)
		assert.Equal(t, tt.want, typeName(p), tt.kind)
	}

	_, err := New(ctx, config.ProviderConfig{Kind: "csv"}, nil, 0, nil)
	assert.Error(t, err)

	t.Setenv("SALESREEL_TEST_KEY", "")
	_, err = New(ctx, config.ProviderConfig{Kind: config.ProviderGenAI, APIKeyEnv: "SALESREEL_TEST_KEY"}, nil, 0, nil)
	var le *LoadError
	assert.ErrorAs(t, err, &le)
}

func typeName(v any) string {
	switch v.(type) {
	case Static:
		return "provider.Static"
	case *File:
		return "*provider.File"
	case *Mongo:
		return "*provider.Mongo"
	case *GenAI:
		return "*provider.GenAI"
	}
	return "?"
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestFileJSONAndYAML(t *testing.T) {
	want := []dataset.SalesRecord{
		{Title: "The Legend of Zelda", Year: 1986, NASales: 7.54, Platform: dataset.PlatformNES},
		{Title: "Zelda II: The Adventure of Link", Year: 1987, NASales: 4.97, Platform: dataset.PlatformNES, BoxArtURL: "zelda2.png"},
	}
	exported, err := dataset.ExportJSON(want)
	require.NoError(t, err)

	got, err := NewFile(writeFile(t, "records.json", string(exported))).Load(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json records mismatch (-want +got):\n%s", diff)
	}

	yamlDoc := `
- title: The Legend of Zelda
  year: 1986
  naSales: 7.54
  platform: NES
- title: "Zelda II: The Adventure of Link"
  year: 1987
  naSales: 4.97
  platform: NES
  boxArtUrl: zelda2.png
`
	got, err = NewFile(writeFile(t, "records.yaml", yamlDoc)).Load(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml records mismatch (-want +got):\n%s", diff)
	}
}

func TestFileErrors(t *testing.T) {
	ctx := context.Background()
	var le *LoadError

	_, err := NewFile(filepath.Join(t.TempDir(), "missing.json")).Load(ctx)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, config.ProviderFile, le.Provider)

	_, err = NewFile(writeFile(t, "bad.json", "{")).Load(ctx)
	assert.ErrorAs(t, err, &le)

	_, err = NewFile(writeFile(t, "bad.json", `[{"title":"X","year":1,"naSales":1,"platform":"PS5"}]`)).Load(ctx)
	assert.ErrorAs(t, err, &le)
	assert.ErrorIs(t, err, dataset.ErrInvalidRecord)
}

func TestFileWatch(t *testing.T) {
	path := writeFile(t, "records.json", "[]")
	f := NewFile(path)
	f.Debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- f.Watch(ctx, func() { changed <- struct{}{} })
	}()

	// give the watcher time to subscribe
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"A","year":1,"naSales":1,"platform":"NES"}]`), 0644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}
	cancel()
	assert.NoError(t, <-done)
}

type fakeGenerator struct {
	text  string
	err   error
	calls atomic.Int32
}

func (f *fakeGenerator) Generate(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error) {
	f.calls.Add(1)
	return f.text, f.err
}

func TestGenAIValidatesAndDropsArt(t *testing.T) {
	gen := &fakeGenerator{text: `[
		{"title":"The Legend of Zelda: Breath of the Wild","year":2017,"naSales":35.08,"platform":"Switch","boxArtUrl":"https://example.com/botw.jpg"},
		{"title":"The Legend of Zelda","year":1986,"naSales":7.54,"platform":"NES"}
	]`}
	p := NewGenAI(gen, "gemini-2.5-flash", nil)

	records, err := p.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "The Legend of Zelda", records[0].Title, "sorted by sales ascending")
	for _, r := range records {
		assert.Empty(t, r.BoxArtURL)
	}
}

func TestGenAIFailures(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"api error", &fakeGenerator{err: errors.New("quota")}},
		{"empty", &fakeGenerator{text: ""}},
		{"not json", &fakeGenerator{text: "sure! here you go"}},
		{"no records", &fakeGenerator{text: "[]"}},
		{"bad platform", &fakeGenerator{text: `[{"title":"X","year":1,"naSales":1,"platform":"Game & Watch"}]`}},
		{"negative sales", &fakeGenerator{text: `[{"title":"X","year":1,"naSales":-1,"platform":"NES"}]`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenAI(tt.gen, "m", nil).Load(context.Background())
			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, config.ProviderGenAI, le.Provider)
		})
	}
}

func TestGenAIUsesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	gen := &fakeGenerator{text: `[{"title":"The Legend of Zelda","year":1986,"naSales":7.54,"platform":"NES"}]`}

	p := NewGenAI(gen, "m", nil)
	p.Cache, p.TTL = c, time.Hour

	first, err := p.Load(context.Background())
	require.NoError(t, err)
	second, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), gen.calls.Load())
}

func TestRecordSchema(t *testing.T) {
	s := recordSchema()
	assert.Equal(t, genai.TypeArray, s.Type)
	require.NotNil(t, s.Items)
	assert.ElementsMatch(t, []string{"title", "year", "naSales", "platform"}, s.Items.Required)
	assert.Len(t, s.Items.Properties["platform"].Enum, len(dataset.Platforms))
	assert.Contains(t, salesPrompt(), "Breath of the Wild")
}

func TestMongoErrors(t *testing.T) {
	var le *LoadError
	_, err := NewMongo("", "db", "c", time.Second).Load(context.Background())
	assert.ErrorAs(t, err, &le)

	_, err = NewMongo("not-a-uri", "db", "c", time.Second).Load(context.Background())
	assert.ErrorAs(t, err, &le)

	filter, opts := recordsQuery()
	assert.Empty(t, filter)
	assert.NotNil(t, opts.Sort)
}

type scriptedProvider struct {
	results []error
	calls   int
}

func (s *scriptedProvider) Name() string { return "scripted" }

func (s *scriptedProvider) Load(ctx context.Context) ([]dataset.SalesRecord, error) {
	err := s.results[s.calls]
	s.calls++
	if err != nil {
		return nil, &LoadError{Provider: s.Name(), Err: err}
	}
	return dataset.Fixture(), nil
}

func TestLoaderStateMachine(t *testing.T) {
	p := &scriptedProvider{results: []error{nil, errors.New("offline"), nil}}
	l := NewLoader(p, nil)
	ctx := context.Background()

	st := l.Status()
	assert.Equal(t, StateIdle, st.State)
	assert.Empty(t, st.Records)

	require.NoError(t, l.Reload(ctx))
	st = l.Status()
	assert.Equal(t, StateReady, st.State)
	assert.Len(t, st.Records, 19)
	assert.Equal(t, uint64(1), st.Generation)

	err := l.Reload(ctx)
	require.Error(t, err)
	st = l.Status()
	assert.Equal(t, StateError, st.State)
	assert.Empty(t, l.Records(), "a failed reload leaves no partial data")
	assert.Equal(t, FailureMessage, st.Message)
	assert.ErrorContains(t, st.Err, "offline")

	require.NoError(t, l.Reload(ctx))
	st = l.Status()
	assert.Equal(t, StateReady, st.State)
	assert.Empty(t, st.Message)
	assert.Equal(t, uint64(3), st.Generation)
	assert.Equal(t, 3, p.calls, "no automatic retries")
}

func TestLoaderWatchWithoutWatcher(t *testing.T) {
	l := NewLoader(Static{}, nil)
	assert.NoError(t, l.Watch(context.Background()))
}

func TestStateText(t *testing.T) {
	b, err := StateReady.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ready", string(b))
	assert.Equal(t, "loading", StateLoading.String())
}
