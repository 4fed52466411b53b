package tui

import "github.com/reelterm/reel/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogUpdatedMsg signals that a category's state changed; the model
// re-reads its snapshot from the catalog state.
type CatalogUpdatedMsg struct {
	Category domain.Category
	Err      error
}

// DetailsLoadedMsg carries the full record for the selected item
type DetailsLoadedMsg struct {
	Details *domain.MediaDetails
	Err     error
}

// AuthResultMsg signals a completed login or register attempt
type AuthResultMsg struct {
	Err error
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg drives the loading spinner
type TickMsg struct{}
