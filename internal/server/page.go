package server

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/effects"
	"github.com/ivlev/salesreel/internal/provider"
)

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"sales": func(v float64) string { return fmt.Sprintf("%gm", v) },
}).Parse(pageTpl))

type pageData struct {
	Status     provider.Status
	Provider   string
	Records    []dataset.SalesRecord
	Width      int
	Height     int
	FPS        int
	SourceURL  string
	ExportName string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := s.loader.Status()
	data := pageData{
		Status:     st,
		Provider:   s.loader.Provider().Name(),
		Records:    st.Records,
		Width:      s.cfg.Width,
		Height:     s.cfg.Height,
		FPS:        s.cfg.FPS,
		SourceURL:  effects.CreditsURL + "/wiki/The_Legend_of_Zelda",
		ExportName: dataset.ExportFilename,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("render page", "err", err)
	}
}

const pageTpl = `<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>Hyrule Analytics</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;background:#020617;color:#e2e8f0;max-width:1280px;margin:0 auto;padding:1rem}
header{display:flex;justify-content:space-between;align-items:center;border-bottom:1px solid #1e293b;padding-bottom:.75rem;margin-bottom:1rem}
h1{color:#eab308;font-size:1.25rem;margin:0}
.layout{display:grid;grid-template-columns:2fr 1fr;gap:24px;align-items:start}
.panel{background:#0f172a;border:1px solid #1e293b;border-radius:12px;padding:12px}
.screen{position:relative;aspect-ratio:{{.Width}}/{{.Height}};background:#0f172a;border-radius:12px;overflow:hidden}
.screen img{width:100%;height:100%;display:block}
.overlay{position:absolute;inset:0;display:flex;flex-direction:column;align-items:center;justify-content:center;text-align:center;padding:2rem}
.controls{display:flex;gap:8px;align-items:center;margin-top:8px}
.controls input[type=range]{flex:1}
button{background:#334155;color:#fff;border:1px solid #475569;border-radius:6px;padding:6px 12px;cursor:pointer}
button.primary{background:#047857;border-color:#059669}
button.danger{background:#dc2626;border-color:#b91c1c}
table{width:100%;border-collapse:collapse;font-size:.875rem}
td,th{padding:8px;border-bottom:1px solid #1e293b;text-align:left}
td.num,th.num{text-align:right;font-family:ui-monospace,monospace}
td.sales{color:#eab308;font-weight:700}
.tag{font-family:ui-monospace,monospace;font-size:10px;background:#1e293b;border-radius:4px;padding:1px 6px;color:#94a3b8}
.muted{color:#64748b}
a{color:#10b981}
</style>
<header>
  <h1>Hyrule Analytics</h1>
  <span class="tag">{{.Provider}}</span>
</header>

<div class="layout">
  <section>
    <div class="screen">
      <img id="frame" alt="preview" {{if ne .Status.State.String "ready"}}hidden{{end}}>
      <div class="overlay" id="loading" {{if ne .Status.State.String "loading"}}hidden{{end}}>
        <p style="color:#34d399">Consulting the Sheikah Slate...</p>
        <p class="muted">Finding artifacts...</p>
      </div>
      <div class="overlay" id="error" {{if ne .Status.State.String "error"}}hidden{{end}}>
        <p>{{.Status.Message}}</p>
        <button class="danger" id="retry">Retry Connection</button>
      </div>
    </div>
    <div class="controls">
      <button id="toggle">Pause</button>
      <button id="replay">Replay</button>
      <input type="range" id="seek" min="0" value="0">
      <span class="muted" id="clock">0.0s</span>
    </div>
    <div class="panel" style="margin-top:16px">
      <strong>About This Timeline</strong>
      <p class="muted">Visualizing sales history with platform context and box art.</p>
      <a href="{{.SourceURL}}" target="_blank" rel="noreferrer">Source: vgsales.fandom.com</a>
      {{if eq .Status.State.String "ready"}}
      <div class="controls">
        <a href="/api/export" download="{{.ExportName}}"><button>Download JSON</button></a>
        <button class="primary" id="video">Download Video</button>
      </div>
      {{end}}
    </div>
  </section>

  <aside class="panel">
    <h2 style="color:#eab308;margin:0">Chronicles</h2>
    <p class="muted">Data parsed from Fandom Wiki</p>
    {{if .Records}}
    <table>
      <thead><tr><th>Game</th><th class="num">Year</th><th class="num">Sales</th></tr></thead>
      <tbody>
      {{range .Records}}
        <tr>
          <td>{{.Title}}<br><span class="tag">{{.Platform}}</span></td>
          <td class="num">{{.Year}}</td>
          <td class="num sales">{{sales .NASales}}</td>
        </tr>
      {{end}}
      </tbody>
    </table>
    {{else}}
    <p class="muted"><em>No records loaded.</em></p>
    {{end}}
  </aside>
</div>

<script>
(function(){
  const img = document.getElementById('frame');
  const seek = document.getElementById('seek');
  const clock = document.getElementById('clock');
  const toggle = document.getElementById('toggle');
  let busy = false, pending = -1, lastState = {{.Status.State.String}};

  function load(frame){
    if (busy) { pending = frame; return; }
    busy = true;
    img.src = '/frames/' + frame + '.png';
  }
  img.onload = img.onerror = function(){
    busy = false;
    if (pending >= 0) { const f = pending; pending = -1; load(f); }
  };

  const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws/play');
  const send = (cmd, frame) => ws.send(JSON.stringify({cmd: cmd, frame: frame || 0}));
  ws.onmessage = function(ev){
    const t = JSON.parse(ev.data);
    if (t.state !== lastState) { location.reload(); return; }
    seek.max = t.duration - 1;
    seek.value = t.frame;
    clock.textContent = t.seconds.toFixed(1) + 's · ' + t.phase;
    toggle.textContent = t.playing ? 'Pause' : 'Play';
    if (t.state === 'ready') load(t.frame);
  };

  toggle.onclick = () => send('toggle');
  document.getElementById('replay').onclick = () => send('replay');
  seek.oninput = () => send('seek', parseInt(seek.value, 10));

  const retry = document.getElementById('retry');
  if (retry) retry.onclick = () => {
    document.getElementById('error').hidden = true;
    document.getElementById('loading').hidden = false;
    fetch('/api/reload', {method: 'POST'}).finally(() => location.reload());
  };
  const video = document.getElementById('video');
  if (video) video.onclick = () => fetch('/api/video').then(r => r.json()).then(m => alert(m.message));
})();
</script>
</html>
`
