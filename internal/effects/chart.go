package effects

import (
	"math"
	"strconv"

	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/renderer"
	"github.com/ivlev/salesreel/internal/timeline"
)

// Summary card texts.
const (
	SummaryTitle    = "SALES TIMELINE"
	SummarySubtitle = "Units Sold (Millions) by Release Year"
	PlatformTitle   = "SALES BY PLATFORM"
	PlatformSub     = "Units Sold (Millions) per Console"
	Credits         = "Data: vgsales.fandom.com | Images: zelda.fandom.com"
	CreditsURL      = "https://vgsales.fandom.com"
)

// chartHeadroom keeps the tallest bar below the top of the chart area.
const chartHeadroom = 1.1

type chartLayout struct {
	stagger    int
	heightFrac float64
	widthFrac  float64
}

var (
	chartLayouts = map[ChartVariant]chartLayout{
		ChartTimeline: {stagger: 3, heightFrac: 0.45, widthFrac: 0.9},
		ChartCompact:  {stagger: 2, heightFrac: 0.5, widthFrac: 0.85},
		ChartPlatform: {stagger: 3, heightFrac: 0.45, widthFrac: 0.9},
	}
	barSpring = renderer.SpringConfig{Stiffness: 120, Damping: 15}
)

// Bar is one column of the summary chart.
type Bar struct {
	Title     string
	Year      int
	Platform  dataset.Platform
	Sales     float64
	Games     int    // records folded into this bar
	BoxArtURL string // empty for platform bars
	Value     string // label above the bar
	Caption   string // label below the bar
}

// BarState is a bar at a given frame.
type BarState struct {
	Bar
	X        float64 // left edge of the slot
	Width    float64 // slot width
	Height   float64
	Opacity  float64
	Scale    float64
	Progress float64 // raw spring value, may overshoot
}

// SummaryState is the closing chart card.
type SummaryState struct {
	Variant     ChartVariant
	Title       string
	Subtitle    string
	Credits     string
	ChartWidth  float64
	ChartHeight float64
	Bars        []BarState
}

func buildBars(v ChartVariant, records []dataset.SalesRecord) []Bar {
	switch v {
	case ChartPlatform:
		totals := dataset.AggregateByPlatform(records)
		bars := make([]Bar, len(totals))
		for i, t := range totals {
			sales := math.Round(t.NASales*100) / 100
			bars[i] = Bar{
				Title:    string(t.Platform),
				Platform: t.Platform,
				Sales:    t.NASales,
				Games:    t.Games,
				Value:    strconv.FormatFloat(sales, 'f', -1, 64) + "m",
				Caption:  string(t.Platform),
			}
		}
		return bars
	case ChartCompact:
		bars := make([]Bar, len(records))
		for i, r := range records {
			b := recordBar(r)
			b.Value = ""
			if r.NASales >= 1 {
				b.Value = strconv.Itoa(int(math.Round(r.NASales)))
			}
			b.Caption = shortTitle(r.Title)
			bars[i] = b
		}
		return bars
	default:
		sorted := dataset.SortedByYear(records)
		bars := make([]Bar, len(sorted))
		for i, r := range sorted {
			b := recordBar(r)
			b.Value = strconv.FormatFloat(r.NASales, 'f', -1, 64) + "m"
			b.Caption = strconv.Itoa(r.Year)
			bars[i] = b
		}
		return bars
	}
}

func recordBar(r dataset.SalesRecord) Bar {
	return Bar{
		Title:     r.Title,
		Year:      r.Year,
		Platform:  r.Platform,
		Sales:     r.NASales,
		Games:     1,
		BoxArtURL: r.BoxArtURL,
	}
}

// shortTitle keeps axis captions readable: titles over 10 characters are cut
// to their first 8 and marked with "..".
func shortTitle(title string) string {
	r := []rune(title)
	if len(r) > 10 {
		return string(r[:8]) + ".."
	}
	return title
}

func (a *Animator) summary(scene *Scene, offset int) *SummaryState {
	variant := a.Chart
	layout, ok := chartLayouts[variant]
	if !ok {
		variant, layout = ChartTimeline, chartLayouts[ChartTimeline]
	}

	st := &SummaryState{
		Variant:     variant,
		Title:       SummaryTitle,
		Subtitle:    SummarySubtitle,
		Credits:     Credits,
		ChartWidth:  a.Width * layout.widthFrac,
		ChartHeight: a.Height * layout.heightFrac,
	}
	if variant == ChartPlatform {
		st.Title, st.Subtitle = PlatformTitle, PlatformSub
	}

	bars := scene.Bars(variant)
	if len(bars) == 0 {
		return st
	}

	top := 0.0
	for _, b := range bars {
		top = math.Max(top, b.Sales)
	}
	top *= chartHeadroom

	slot := st.ChartWidth / float64(len(bars))
	left := (a.Width - st.ChartWidth) / 2
	st.Bars = make([]BarState, len(bars))
	for i, b := range bars {
		delay := timeline.Stagger(0, i, layout.stagger)
		progress := renderer.Spring(offset-delay, a.FPS, barSpring)

		target := 0.0
		if top > 0 {
			target = b.Sales / top * st.ChartHeight
		}
		st.Bars[i] = BarState{
			Bar:      b,
			X:        left + float64(i)*slot,
			Width:    slot,
			Height:   renderer.Interpolate(progress, renderer.Range{Min: 0, Max: 1}, renderer.Range{Min: 0, Max: target}, renderer.Clamp),
			Opacity:  renderer.Interpolate(progress, renderer.Range{Min: 0, Max: 0.5}, renderer.Range{Min: 0, Max: 1}, renderer.Clamp),
			Scale:    renderer.Interpolate(progress, renderer.Range{Min: 0, Max: 1}, renderer.Range{Min: 0, Max: 1}, renderer.Clamp),
			Progress: progress,
		}
	}
	return st
}
