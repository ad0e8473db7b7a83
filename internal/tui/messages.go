package tui

import (
	"github.com/mmcdole/vidda/internal/controller"
	"github.com/mmcdole/vidda/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	msg := domain.UserMessage(e.Err)
	if e.Context != "" {
		return e.Context + ": " + msg
	}
	return msg
}

// HomeStateMsg carries a new home feed state
type HomeStateMsg struct{ State controller.HomeState }

// SearchStateMsg carries a new search state
type SearchStateMsg struct{ State controller.SearchState }

// UpcomingStateMsg carries a new upcoming list state
type UpcomingStateMsg struct {
	State controller.Async[[]domain.Title]
}

// DetailStateMsg carries a new detail state
type DetailStateMsg struct{ State controller.DetailState }

// SavedStateMsg carries a new saved list state
type SavedStateMsg struct{ State controller.SavedState }

// TrailerLaunchedMsg signals that the player was started
type TrailerLaunchedMsg struct {
	Title string
}

// StatusMsg shows a transient message in the footer
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the footer message
type ClearStatusMsg struct{}

// TickMsg advances the spinner
type TickMsg struct{}
