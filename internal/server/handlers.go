package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/provider"
	"github.com/ivlev/salesreel/internal/timeline"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

type recordsResponse struct {
	provider.Status
	Provider string                `json:"provider"`
	Records  []dataset.SalesRecord `json:"records"`
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	st := s.loader.Status()
	records := st.Records
	if records == nil {
		records = []dataset.SalesRecord{}
	}
	writeJSON(w, http.StatusOK, recordsResponse{
		Status:   st,
		Provider: s.loader.Provider().Name(),
		Records:  records,
	})
}

// handleExport serves the same bytes the CLI export writes. There is nothing
// to download until records are loaded.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	st := s.loader.Status()
	if st.State != provider.StateReady || len(st.Records) == 0 {
		httpError(w, http.StatusConflict, "no records loaded")
		return
	}
	data, err := dataset.ExportJSON(st.Records)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dataset.ExportFilename))
	_, _ = w.Write(data)
}

type timelineResponse struct {
	FPS            int              `json:"fps"`
	Width          int              `json:"width"`
	Height         int              `json:"height"`
	Records        int              `json:"records"`
	Timing         timeline.Timing  `json:"timing"`
	DurationFrames int              `json:"durationFrames"`
	Seconds        float64          `json:"seconds"`
	Windows        []timelineWindow `json:"windows"`
}

type timelineWindow struct {
	Phase  string `json:"phase"`
	Index  int    `json:"index"`
	Start  int    `json:"start"`
	Length int    `json:"length"`
	Title  string `json:"title,omitempty"`
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	timing, err := s.cfg.ResolveTiming()
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	records := s.loader.Records()
	n := len(records)
	resp := timelineResponse{
		FPS:            s.cfg.FPS,
		Width:          s.cfg.Width,
		Height:         s.cfg.Height,
		Records:        n,
		Timing:         timing,
		DurationFrames: timing.Duration(n),
		Seconds:        float64(timing.Duration(n)) / float64(s.cfg.FPS),
	}
	for _, win := range timing.Windows(n) {
		tw := timelineWindow{Phase: win.Phase.String(), Index: win.Index, Start: win.Start, Length: win.Length}
		if win.Phase == timeline.ItemSlide {
			tw.Title = records[win.Index].Title
		}
		resp.Windows = append(resp.Windows, tw)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": VideoMessage})
}

// handleReload is the page's retry action: the fetch runs from scratch and
// the response carries the new state.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	err := s.loader.Reload(r.Context())
	st := s.loader.Status()
	code := http.StatusOK
	if err != nil {
		code = http.StatusBadGateway
	}
	writeJSON(w, code, st)
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil || n < 0 {
		httpError(w, http.StatusBadRequest, "invalid frame number")
		return
	}

	stage, _, err := s.currentStage()
	if errors.Is(err, errNotReady) {
		httpError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n >= stage.Duration() {
		httpError(w, http.StatusNotFound, fmt.Sprintf("frame %d is past the end (%d frames)", n, stage.Duration()))
		return
	}

	// one painter per server, frames are drawn one at a time
	s.renderMu.Lock()
	img, err := stage.Still(n)
	s.renderMu.Unlock()
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}
