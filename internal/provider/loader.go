package provider

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ivlev/salesreel/internal/dataset"
)

// State is the lifecycle of the record list shown by a preview.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// FailureMessage is shown to users instead of the underlying error.
const FailureMessage = "Failed to load Zelda sales data. Please check your API key or try again."

// Status is a consistent snapshot of a Loader.
type Status struct {
	State   State                 `json:"state"`
	Records []dataset.SalesRecord `json:"-"`
	Count   int                   `json:"count"`
	Message string                `json:"message,omitempty"`
	Err     error                 `json:"-"`
	// Generation increases on every completed load, successful or not.
	Generation uint64    `json:"generation"`
	LoadedAt   time.Time `json:"loadedAt"`
}

// Loader drives a Provider through Idle, Loading, Ready and Error.
// Reload always starts from scratch; a failure leaves no records behind.
type Loader struct {
	provider Provider
	logger   *log.Logger

	reloadMu sync.Mutex
	mu       sync.RWMutex
	status   Status
}

func NewLoader(p Provider, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{provider: p, logger: logger}
}

func (l *Loader) Provider() Provider { return l.provider }

// Status returns the current snapshot. Records must not be modified.
func (l *Loader) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

// Records returns the loaded records, empty unless the state is Ready.
func (l *Loader) Records() []dataset.SalesRecord {
	return l.Status().Records
}

// Reload fetches the records again. Concurrent calls are serialized.
func (l *Loader) Reload(ctx context.Context) error {
	l.reloadMu.Lock()
	defer l.reloadMu.Unlock()

	l.mu.Lock()
	l.status.State = StateLoading
	l.status.Message = ""
	l.status.Err = nil
	l.mu.Unlock()

	start := time.Now()
	records, err := l.provider.Load(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.status.Generation++
	l.status.LoadedAt = time.Now()
	if err != nil {
		l.status.State = StateError
		l.status.Records = nil
		l.status.Count = 0
		l.status.Err = err
		l.status.Message = FailureMessage
		l.logger.Error("records failed to load", "provider", l.provider.Name(), "err", err)
		return err
	}
	l.status.State = StateReady
	l.status.Records = dataset.Clone(records)
	l.status.Count = len(records)
	l.logger.Info("records loaded", "provider", l.provider.Name(), "records", len(records), "took", time.Since(start).Round(time.Millisecond))
	return nil
}

// Watcher is implemented by providers that can signal changes.
type Watcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// Watch reloads whenever the provider reports a change, until ctx ends.
// It returns immediately for providers that cannot watch.
func (l *Loader) Watch(ctx context.Context) error {
	w, ok := l.provider.(Watcher)
	if !ok {
		return nil
	}
	return w.Watch(ctx, func() {
		l.logger.Info("source changed, reloading", "provider", l.provider.Name())
		_ = l.Reload(ctx)
	})
}
