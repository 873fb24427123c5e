package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CodexForgeBR/can-exit/internal/grid"
	"github.com/CodexForgeBR/can-exit/internal/session"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6C7086"))

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	speedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4"))

	foundStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E3A1"))

	notFoundStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F38BA8"))

	unknownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9E2AF"))

	panelStyle = lipgloss.NewStyle().
			PaddingLeft(3)
)

// Styled renders the board with the log, message, speed and conclusion
// panel to its right.
func Styled(snap session.Snapshot) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, board(snap), panelStyle.Render(panel(snap)))
}

func board(snap session.Snapshot) string {
	if len(snap.Cells) == 0 {
		return ""
	}
	start := grid.Coord{}
	goal := grid.Coord{X: snap.Width - 1, Y: snap.Height - 1}
	markers := showMarkers(snap.Status)

	lines := make([]string, 0, len(snap.Cells))
	for y, row := range snap.Cells {
		var b strings.Builder
		for x, c := range row {
			bg := lipgloss.Color(hexColor(cellColor(c, snap.Status)))
			block := "  "
			if markers {
				switch (grid.Coord{X: x, Y: y}) {
				case start:
					block = "S "
				case goal:
					block = "F "
				}
			}
			b.WriteString(lipgloss.NewStyle().
				Background(bg).
				Foreground(lipgloss.Color(hexColor(markerColor))).
				Bold(true).
				Render(block))
		}
		lines = append(lines, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func panel(snap session.Snapshot) string {
	lines := []string{headerStyle.Render("LOG")}
	for _, entry := range snap.Log {
		lines = append(lines, logStyle.Render("> "+entry))
	}

	lines = append(lines, "")
	for _, entry := range snap.Message {
		// Key prompts blink.
		if strings.Contains(entry, "[") && !blinkOn(snap.Speed, snap.Tick) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, messageStyle.Render(entry))
	}

	lines = append(lines,
		"",
		dimStyle.Render(fmt.Sprintf("[UP], [DOWN] - adjust animation speed (%d..%d)", session.MinSpeed, session.MaxSpeed)),
		speedStyle.Render(fmt.Sprintf("Current speed (steps/sec): %d", snap.Speed)),
		"",
		dimStyle.Render("Conclusion:"),
		conclusionStyle(snap.Status).Render(snap.Status.Conclusion()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func conclusionStyle(st session.Status) lipgloss.Style {
	switch st.Conclusion() {
	case "PATH FOUND":
		return foundStyle
	case "THERE IS NO PATH":
		return notFoundStyle
	default:
		return unknownStyle
	}
}

// blinkOn is true for the second half of each blink cycle. A cycle lasts
// about half a second at the given speed.
func blinkOn(speed, tick int) bool {
	period := speed/2 + 1
	return tick%period > speed/4
}
