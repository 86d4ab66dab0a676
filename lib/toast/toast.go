// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

// Package toast implements the transient notification stack shown in
// the bottom-right corner of the UI. Toasts enter immediately, start
// leaving after a per-level duration, and are removed 300ms later so
// the fade-out state is visible for one more render.
package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

// Level is the toast severity, which picks the accent color and the
// display duration.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
	LevelInfo
)

// Display durations per level. Errors stay longer so the user can
// read the backend detail.
const (
	successDuration = 3 * time.Second
	errorDuration   = 5 * time.Second
	infoDuration    = 3 * time.Second

	// leaveDelay is how long a toast stays in the leaving state
	// before removal.
	leaveDelay = 300 * time.Millisecond
)

func (level Level) duration() time.Duration {
	switch level {
	case LevelError:
		return errorDuration
	case LevelInfo:
		return infoDuration
	default:
		return successDuration
	}
}

// Toast is one visible notification.
type Toast struct {
	ID      int
	Level   Level
	Message string
	Leaving bool
}

// LeaveMsg marks a toast as leaving once its display duration has
// passed.
type LeaveMsg struct{ ID int }

// DismissMsg removes a toast after its leave delay.
type DismissMsg struct{ ID int }

// Stack holds the visible toasts. IDs are monotonically increasing
// for the life of the stack so a stale LeaveMsg can never hit a
// reused slot.
//
// The zero value is ready to use. The root model owns the single
// stack; pages request notifications by emitting a message that the
// model routes into it.
type Stack struct {
	nextID int
	toasts []Toast
}

// Success pushes a success toast and returns the command that will
// start its departure.
func (stack *Stack) Success(message string) tea.Cmd {
	return stack.push(LevelSuccess, message)
}

// Error pushes an error toast.
func (stack *Stack) Error(message string) tea.Cmd {
	return stack.push(LevelError, message)
}

// Info pushes an informational toast.
func (stack *Stack) Info(message string) tea.Cmd {
	return stack.push(LevelInfo, message)
}

func (stack *Stack) push(level Level, message string) tea.Cmd {
	stack.nextID++
	id := stack.nextID
	stack.toasts = append(stack.toasts, Toast{
		ID:      id,
		Level:   level,
		Message: message,
	})
	return tea.Tick(level.duration(), func(time.Time) tea.Msg {
		return LeaveMsg{ID: id}
	})
}

// Update handles the toast lifecycle messages. Returns a follow-up
// command for LeaveMsg (the delayed removal) and nil otherwise.
// Messages for already-removed toasts are ignored.
func (stack *Stack) Update(message tea.Msg) tea.Cmd {
	switch message := message.(type) {
	case LeaveMsg:
		for index := range stack.toasts {
			if stack.toasts[index].ID == message.ID {
				stack.toasts[index].Leaving = true
				id := message.ID
				return tea.Tick(leaveDelay, func(time.Time) tea.Msg {
					return DismissMsg{ID: id}
				})
			}
		}
	case DismissMsg:
		for index := range stack.toasts {
			if stack.toasts[index].ID == message.ID {
				stack.toasts = append(stack.toasts[:index], stack.toasts[index+1:]...)
				break
			}
		}
	}
	return nil
}

// Toasts returns the visible toasts, oldest first.
func (stack *Stack) Toasts() []Toast {
	return stack.toasts
}

// Active reports whether any toasts are on screen.
func (stack *Stack) Active() bool {
	return len(stack.toasts) > 0
}

// View renders the stack as overlay lines, newest at the bottom,
// right-aligned within maxWidth. Leaving toasts dim to the faint
// color.
func (stack *Stack) View(theme tui.Theme, maxWidth int) []string {
	var lines []string
	for _, item := range stack.toasts {
		accent := theme.ToastInfo
		icon := "ℹ"
		switch item.Level {
		case LevelSuccess:
			accent = theme.ToastSuccess
			icon = "✓"
		case LevelError:
			accent = theme.ToastError
			icon = "✗"
		}

		foreground := theme.NormalText
		if item.Leaving {
			foreground = theme.FaintText
			accent = theme.FaintText
		}

		message := item.Message
		if ansi.StringWidth(message) > maxWidth-6 {
			message = ansi.Truncate(message, maxWidth-7, "…")
		}

		body := lipgloss.NewStyle().Foreground(accent).Render(icon+" ") +
			lipgloss.NewStyle().Foreground(foreground).Render(message)
		boxed := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Render(body)
		lines = append(lines, strings.Split(boxed, "\n")...)
	}
	return lines
}
