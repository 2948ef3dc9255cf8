// Package server is the browser preview: a page with the player, the record
// table and the download actions, backed by a websocket playback driver and
// PNG frames rendered on demand.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/ivlev/salesreel/internal/compose"
	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/engine"
	"github.com/ivlev/salesreel/internal/provider"
)

// VideoMessage answers the page's "Download Video" action.
const VideoMessage = "To download this video as an MP4, run `salesreel render` in your terminal. This web preview is for visualization only."

var errNotReady = errors.New("records are not loaded")

type Server struct {
	cfg    *config.Config
	loader *provider.Loader
	art    compose.ArtSource
	logger *log.Logger

	router   chi.Router
	upgrader websocket.Upgrader

	mu       sync.Mutex
	stage    *engine.Stage
	stageGen uint64
	renderMu sync.Mutex

	quit     chan struct{}
	quitOnce sync.Once
}

func New(cfg *config.Config, loader *provider.Loader, art compose.ArtSource, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		cfg:    cfg,
		loader: loader,
		art:    art,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		quit: make(chan struct{}),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Get("/frames/{n}.png", s.handleFrame)
	r.Get("/ws/play", s.handlePlay)
	r.Route("/api", func(r chi.Router) {
		r.Get("/records", s.handleRecords)
		r.Get("/export", s.handleExport)
		r.Get("/timeline", s.handleTimeline)
		r.Get("/video", s.handleVideo)
		r.Post("/reload", s.handleReload)
	})
	return r
}

func (s *Server) Handler() http.Handler { return s.router }

// Close ends every playback session. It is safe to call more than once.
func (s *Server) Close() {
	s.quitOnce.Do(func() { close(s.quit) })
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("[*] Preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.Close()
		return err
	case <-ctx.Done():
	}

	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// currentStage returns a stage for the loaded records, rebuilding it when the
// loader has completed a new load since the last call.
func (s *Server) currentStage() (*engine.Stage, provider.Status, error) {
	st := s.loader.Status()
	if st.State != provider.StateReady {
		return nil, st, errNotReady
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage == nil || s.stageGen != st.Generation {
		stage, err := engine.NewStage(s.cfg, st.Records, s.art)
		if err != nil {
			return nil, st, err
		}
		s.stage, s.stageGen = stage, st.Generation
	}
	return s.stage, st, nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "took", time.Since(start).Round(time.Microsecond))
	})
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
