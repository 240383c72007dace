package model

// Centralized icons for the picker UI
// Using simple single-width characters for consistent terminal rendering
const (
	IconPicked   = "✓" // Archive will be loaded
	IconUnpicked = " " // Space (not picked)
	IconCursor   = "›" // Cursor row
)
