package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Command factories for async operations

// listen waits for the next value on ch and wraps it in a message.
// The Update handler re-issues it to keep following the stream.
func listen[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(v)
	}
}

// PlayTrailerCmd opens the trailer in an external player
func PlayTrailerCmd(p TrailerPlayer, videoID, title string) tea.Cmd {
	return func() tea.Msg {
		if err := p.PlayTrailer(videoID); err != nil {
			return ErrMsg{Err: err, Context: "playing trailer"}
		}
		return TrailerLaunchedMsg{Title: title}
	}
}

// TickCmd returns a command that ticks for spinner animation
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
