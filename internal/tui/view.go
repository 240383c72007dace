package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mapbrowse/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("250"))

	pickedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")) // Green check

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mapbrowse: pick archives"))
	b.WriteString("\n\n")

	if len(m.FilteredIndices) == 0 {
		b.WriteString(dimStyle.Render("  (no archives match the filter)"))
		b.WriteString("\n")
	}

	for pos, idx := range m.FilteredIndices {
		mark := model.IconUnpicked
		if m.Picked[idx] {
			mark = pickedStyle.Render(model.IconPicked)
		}
		line := fmt.Sprintf("[%s] %s", mark, m.Files[idx])
		if pos == m.Cursor {
			b.WriteString(selectedItemStyle.Render(model.IconCursor + " " + line))
		} else {
			b.WriteString(unselectedItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.InputMode {
		b.WriteString("Filter: " + m.InputBuffer.View())
	} else {
		status := fmt.Sprintf("%d of %d picked", len(m.Selection()), len(m.Files))
		if m.FilterActive {
			status += fmt.Sprintf(" (filter: %s)", m.InputBuffer.Value())
		}
		b.WriteString(dimStyle.Render(status))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("space: toggle  a: all  /: filter  enter: browse  q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}
