package player

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/timeline"
)

// TimelineTable renders the phase windows for records as a table, followed
// by the total duration.
func TimelineTable(timing timeline.Timing, records []dataset.SalesRecord, fps int) string {
	rows := make([][]string, 0, len(records)+2)
	for _, w := range timing.Windows(len(records)) {
		label := w.Phase.String()
		title := ""
		switch w.Phase {
		case timeline.ItemSlide:
			label = fmt.Sprintf("%s %d", label, w.Index+1)
			title = records[w.Index].Title
		case timeline.Intro:
			title = "Legend of Zelda"
		case timeline.Summary:
			title = "Sales timeline"
		}
		rows = append(rows, []string{
			label,
			strconv.Itoa(w.Start),
			strconv.Itoa(w.End() - 1),
			seconds(w.Start, fps),
			title,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("PHASE", "FROM", "TO", "AT", "CONTENT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col >= 1 && col <= 3 {
				return styleNumCell
			}
			return styleCell
		})

	total := timing.Duration(len(records))
	summary := fmt.Sprintf("%s %s frames, %s at %d fps",
		styleMuted.Render("total"),
		styleValue.Render(strconv.Itoa(total)),
		styleValue.Render(seconds(total, fps)),
		fps)
	return t.Render() + "\n" + summary + "\n"
}

func seconds(frames, fps int) string {
	if fps <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", float64(frames)/float64(fps))
}
