package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/zsiec/cutcheck/internal/correlate"
)

// Dark-terminal palette.
var (
	accent = lipgloss.Color("#1E88E5")
	green  = lipgloss.Color("#4CAF50")
	text   = lipgloss.Color("#E0E0E0")
	bright = lipgloss.Color("#FFFFFF")
	muted  = lipgloss.Color("#90A4AE")
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(bright).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(bright).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	indexStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(text)
)

// Render lays out the terminal summary of a validated sequence: a
// header block, the sequence totals, then one row per event. Display
// only; the fixture on disk is the machine-readable result.
func Render(info *correlate.SequenceInfo) string {
	sections := []string{
		headerStyle.Render("CUT SUMMARY"),
		summaryLine("start", info.StartTime.Timecode),
		summaryLine("frame rate", info.StartTime.FrameRate.String()+" fps"),
		summaryLine("total duration", fmt.Sprintf("%d frames", info.TotalDurationFrames)),
		labelStyle.Render("events") + countStyle.Render(fmt.Sprintf("%d", len(info.Events))),
		"",
	}

	for i, ev := range info.Events {
		sections = append(sections, eventRow(i+1, ev))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func summaryLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func eventRow(n int, ev correlate.EventRecord) string {
	index := indexStyle.Render(fmt.Sprintf("%03d", n))
	duration := valueStyle.Render(fmt.Sprintf("%5d", ev.DurationFrames))
	detail := rowStyle.Render(fmt.Sprintf(
		" frames  src %s > %s  rec %s > %s  ",
		ev.SourceIn.Timecode, ev.SourceOut.Timecode,
		ev.RecordIn.Timecode, ev.RecordOut.Timecode,
	))
	footage := labelStyle.Render(ev.RecordOut.FeetAndFrames)

	return index + " " + duration + detail + footage
}
