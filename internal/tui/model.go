package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PickerModel holds the archive-picker state.
type PickerModel struct {
	// Data
	Files []string

	// UI State
	Cursor     int
	Picked     map[int]bool
	WindowSize tea.WindowSizeMsg

	// Outcome
	Confirmed bool

	// Filter State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Files to show
	FilterActive    bool
}

// InitialModel returns the picker primed with the discovered files.
func InitialModel(files []string) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Archive name..."
	ti.CharLimit = 50
	ti.Width = 20

	m := PickerModel{
		Files:       files,
		Picked:      make(map[int]bool),
		InputBuffer: ti,
	}
	m.FilteredIndices = allIndices(len(files))
	return m
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Selection returns the picked files in listing order.
func (m PickerModel) Selection() []string {
	var files []string
	for i, f := range m.Files {
		if m.Picked[i] {
			files = append(files, f)
		}
	}
	return files
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd { return nil }
