package player

import "github.com/charmbracelet/lipgloss"

var (
	colorGold    = lipgloss.Color("220")
	colorEmerald = lipgloss.Color("36")
	colorWhite   = lipgloss.Color("255")
	colorGray    = lipgloss.Color("245")
	colorDim     = lipgloss.Color("240")
	colorRed     = lipgloss.Color("167")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	stylePhase   = lipgloss.NewStyle().Bold(true).Foreground(colorEmerald)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleSales   = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	styleBar     = lipgloss.NewStyle().Foreground(colorEmerald)
	styleTrack   = lipgloss.NewStyle().Foreground(colorDim)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorGold).Padding(0, 1)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
	styleNumCell = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	styleFrame   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)
