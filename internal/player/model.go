package player

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivlev/salesreel/internal/effects"
	"github.com/ivlev/salesreel/internal/timeline"
)

type tickMsg time.Time

// Model plays the animation in the terminal: the frame counter comes from a
// Transport advanced by a tea.Tick at the video frame rate, and each frame is
// shown as the animated values the video would draw.
type Model struct {
	Transport *Transport
	Scene     *effects.Scene
	Animator  *effects.Animator
	FPS       int

	width int
}

func NewModel(scene *effects.Scene, animator *effects.Animator) Model {
	return Model{
		Transport: NewTransport(animator.Duration(scene), false),
		Scene:     scene,
		Animator:  animator,
		FPS:       animator.FPS,
		width:     80,
	}
}

func (m Model) tick() tea.Cmd {
	fps := m.FPS
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.Transport.Tick()
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.Transport.Toggle()
		case "left", "h":
			m.Transport.Step(-m.FPS)
		case "right", "l":
			m.Transport.Step(m.FPS)
		case ",":
			m.Transport.Step(-1)
		case ".":
			m.Transport.Step(1)
		case "home", "r":
			m.Transport.Replay()
		case "end":
			m.Transport.Seek(m.Transport.Duration() - 1)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	st, err := m.Animator.AnimateFrame(m.Scene, m.Transport.Frame())
	if err != nil {
		return styleError.Render(err.Error()) + "\n"
	}

	inner := m.width - 6
	if inner < 30 {
		inner = 30
	}

	var body string
	switch st.Position.Phase {
	case timeline.Intro:
		body = m.viewIntro(st.Intro, inner)
	case timeline.ItemSlide:
		body = m.viewSlide(st.Slide, inner)
	case timeline.Summary:
		body = m.viewSummary(st.Summary, inner)
	}

	var b strings.Builder
	b.WriteString(styleFrame.Width(inner + 2).Render(body))
	b.WriteString("\n")
	b.WriteString(m.viewProgress(st.Position, inner+4))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("space play/pause  ←/→ 1s  ,/. 1 frame  r replay  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewIntro(in *effects.IntroState, width int) string {
	lines := []string{
		styleTitle.Render(fade("LEGEND OF ZELDA", in.TitleOpacity*in.Opacity)),
		styleMuted.Render(fade("SALES HISTORY", in.TitleOpacity*in.Opacity)),
		"",
		styleDim.Render(fade(fmt.Sprintf("Total Volume: %s Million Units", in.TotalSales), in.TitleOpacity*in.Opacity)),
	}
	sword := "sword landing"
	if in.SwordY == 0 && in.SwordRotate == 0 {
		sword = "sword in pedestal"
	}
	lines = append(lines, "", styleDim.Render(sword))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}

func (m Model) viewSlide(s *effects.SlideState, width int) string {
	r := s.Record
	header := stylePhase.Render(fmt.Sprintf("#%d  %d  %s", s.Index+1, r.Year, r.Platform))
	title := styleValue.Bold(true).Render(fade(r.Title, s.TitleOpacity))
	sales := styleSales.Render(fade(s.SalesText+"M", s.SalesOpacity)) + styleMuted.Render(" units sold (NA)")
	return strings.Join([]string{header, title, "", sales, bar(s.BarFill, width)}, "\n")
}

func (m Model) viewSummary(s *effects.SummaryState, width int) string {
	lines := []string{styleTitle.Render(s.Title), styleMuted.Render(s.Subtitle), ""}
	labelW := 0
	for _, b := range s.Bars {
		if l := len([]rune(b.Caption)); l > labelW {
			labelW = l
		}
	}
	if labelW > 24 {
		labelW = 24
	}
	max := 0.0
	for _, b := range s.Bars {
		if b.Sales > max {
			max = b.Sales
		}
	}
	trackW := width - labelW - 10
	if trackW < 10 {
		trackW = 10
	}
	for _, b := range s.Bars {
		pct := 0.0
		if max > 0 {
			pct = b.Sales / max * 100 * clampUnit(b.Progress)
		}
		label := truncate(b.Caption, labelW)
		lines = append(lines, fmt.Sprintf("%-*s %s %s", labelW, label, bar(pct, trackW), styleSales.Render(b.Value)))
	}
	lines = append(lines, "", styleDim.Render(s.Credits))
	return strings.Join(lines, "\n")
}

func (m Model) viewProgress(pos timeline.Position, width int) string {
	t := m.Transport
	state := "▶"
	if !t.Playing() {
		state = "⏸"
	}
	label := fmt.Sprintf(" %s %s  %d/%d  %s", state, pos, t.Frame(), t.Duration(), seconds(t.Frame(), m.FPS))
	trackW := width - lipgloss.Width(label) - 1
	if trackW < 10 {
		trackW = 10
	}
	pct := 0.0
	if t.Duration() > 1 {
		pct = float64(t.Frame()) / float64(t.Duration()-1) * 100
	}
	return bar(pct, trackW) + styleMuted.Render(label)
}

// bar draws a horizontal gauge filled to pct percent.
func bar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return styleBar.Render(strings.Repeat("█", filled)) + styleTrack.Render(strings.Repeat("░", width-filled))
}

// fade hides text until it is mostly visible; a terminal has no alpha.
func fade(s string, opacity float64) string {
	if opacity < 0.5 {
		return strings.Repeat(" ", len([]rune(s)))
	}
	return s
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// Run plays until the user quits.
func Run(scene *effects.Scene, animator *effects.Animator) error {
	_, err := tea.NewProgram(NewModel(scene, animator), tea.WithAltScreen()).Run()
	return err
}
