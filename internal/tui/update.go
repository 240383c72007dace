package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.applyFilter()
				return m, nil
			case tea.KeyEsc:
				// Exit filter mode and clear the filter
				m.InputMode = false
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.applyFilter()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.FilterActive {
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.applyFilter()
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.FilteredIndices)-1 {
				m.Cursor++
			}
		case " ":
			if len(m.FilteredIndices) > 0 {
				idx := m.FilteredIndices[m.Cursor]
				m.Picked[idx] = !m.Picked[idx]
			}
		case "a":
			// Toggle everything currently visible: pick all, or unpick all
			// if all are already picked.
			all := true
			for _, idx := range m.FilteredIndices {
				if !m.Picked[idx] {
					all = false
					break
				}
			}
			for _, idx := range m.FilteredIndices {
				m.Picked[idx] = !all
			}
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	}

	return m, cmd
}

func (m *PickerModel) applyFilter() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		// Reset
		m.FilterActive = false
		m.FilteredIndices = allIndices(len(m.Files))
	} else {
		m.FilterActive = true
		var result []int
		for i, f := range m.Files {
			if strings.Contains(strings.ToLower(f), term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.Cursor >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.Cursor = len(m.FilteredIndices) - 1
		} else {
			m.Cursor = 0
		}
	}
}
