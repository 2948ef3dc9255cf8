package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ivlev/salesreel/internal/player"
)

// command is sent by the page: play, pause, toggle, seek (with frame) or replay.
type command struct {
	Cmd   string `json:"cmd"`
	Frame int    `json:"frame"`
}

// tickMessage wraps a transport tick with the loader state so the page can
// switch between the player and the loading or error panels.
type tickMessage struct {
	player.Tick
	State string `json:"state"`
}

const writeWait = 5 * time.Second

// handlePlay is the preview's playback driver. Each connection owns its frame
// counter, advanced by a ticker at the configured fps. A replay resets it.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	cmds := make(chan command)
	go func() {
		defer close(cmds)
		for {
			var c command
			if err := conn.ReadJSON(&c); err != nil {
				return
			}
			select {
			case cmds <- c:
			case <-done:
				return
			}
		}
	}()

	timing, err := s.cfg.ResolveTiming()
	if err != nil {
		return
	}
	n, gen, state := s.playbackSource()
	transport := player.NewTransport(timing.Duration(n), true)

	send := func() bool {
		msg := tickMessage{Tick: transport.Snapshot(timing, n, s.cfg.FPS), State: state}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(msg) == nil
	}
	if !send() {
		return
	}

	fps := s.cfg.FPS
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		case c, ok := <-cmds:
			if !ok {
				return
			}
			applyCommand(transport, c)
			if !send() {
				return
			}
		case <-ticker.C:
			changed := false
			if nn, ng, ns := s.playbackSource(); ng != gen || ns != state {
				// records changed, so the length did too; start over
				n, gen, state = nn, ng, ns
				transport.SetDuration(timing.Duration(n))
				transport.Replay()
				changed = true
			}
			if transport.Tick() || changed {
				if !send() {
					return
				}
			}
		}
	}
}

func (s *Server) playbackSource() (n int, generation uint64, state string) {
	st := s.loader.Status()
	return len(st.Records), st.Generation, st.State.String()
}

func applyCommand(t *player.Transport, c command) {
	switch c.Cmd {
	case "play":
		t.Play()
	case "pause":
		t.Pause()
	case "toggle":
		t.Toggle()
	case "seek":
		t.Seek(c.Frame)
	case "replay":
		t.Replay()
	}
}
