// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// logNoticeMsg delivers a slog record to the model for display in the
// status bar. Only records at or above the handler's configured level
// are delivered.
type logNoticeMsg struct {
	// Text is the one-line "message (key=value, ...)" summary.
	Text string

	// Level is the slog level for styling (warn vs error).
	Level slog.Level
}

// logNoticeFadeMsg clears the log notice from the status bar and
// restores the keyboard help line.
type logNoticeFadeMsg struct{}

// logNoticeFadeDelay is how long log notices stay visible in the
// status bar.
const logNoticeFadeDelay = 5 * time.Second

// UILogHandler is a slog.Handler that routes log records into the
// running bubbletea program as messages, so diagnostics surface in
// the status bar instead of corrupting the alternate screen.
//
// The handler must be created before the program starts. Call
// SetProgram once the tea.Program exists; records arriving earlier
// are dropped. Handlers derived via WithAttrs/WithGroup share the
// same program pointer, so one SetProgram call covers all of them.
type UILogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
}

// NewUILogHandler creates a handler delivering records at or above
// level.
func NewUILogHandler(level slog.Level) *UILogHandler {
	return &UILogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the bubbletea program that receives log messages.
// Safe to call from any goroutine.
func (handler *UILogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled implements slog.Handler.
func (handler *UILogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record and sends it to the program. Records
// before SetProgram are silently dropped.
func (handler *UILogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}

	var attrParts []string
	for _, attr := range handler.attrs {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
		return true
	})

	text := record.Message
	if len(attrParts) > 0 {
		text += " (" + strings.Join(attrParts, ", ") + ")"
	}

	program.Send(logNoticeMsg{Text: text, Level: record.Level})
	return nil
}

// WithAttrs returns a derived handler with the attributes appended.
// Shares the program pointer with the parent.
func (handler *UILogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &UILogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   append(slices.Clone(handler.attrs), attrs...),
	}
}

// WithGroup returns the handler unchanged. The status bar summary is
// flat; group qualification adds noise without aiding a single-user
// client.
func (handler *UILogHandler) WithGroup(name string) slog.Handler {
	return handler
}
