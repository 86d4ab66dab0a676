// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FormField is one row of a form modal. A field is either free text
// (backed by a textinput) or, when Options is non-empty, a cycle
// selector stepped with left/right.
type FormField struct {
	Label   string
	Input   textinput.Model
	Options []string // Non-empty makes this a selector field.
	Option  int      // Index into Options for selector fields.
}

// FormModal is a centered modal with labeled input fields. Tab and
// shift+tab move focus, enter submits, escape cancels; the owning
// page reads the field values back out on submit.
//
// Used for ticket editing, market type create/edit, and the import
// page's per-candidate correction form.
type FormModal struct {
	Title  string
	Fields []FormField

	focus int
	theme Theme
}

// NewFormModal creates a modal with the given fields. The first field
// starts focused.
func NewFormModal(title string, theme Theme, fields []FormField) FormModal {
	modal := FormModal{
		Title:  title,
		Fields: fields,
		theme:  theme,
	}
	for index := range modal.Fields {
		if index == 0 && modal.Fields[index].Options == nil {
			modal.Fields[index].Input.Focus()
		} else {
			modal.Fields[index].Input.Blur()
		}
	}
	return modal
}

// NewTextField builds a free-text form field with the tracker's
// standard input chrome.
func NewTextField(label, value, placeholder string) FormField {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.SetValue(value)
	input.CharLimit = 120
	return FormField{Label: label, Input: input}
}

// NewSelectField builds a cycle-selector field preset to the option
// matching value (or the first option when no match).
func NewSelectField(label string, options []string, value string) FormField {
	field := FormField{Label: label, Options: options}
	for index, option := range options {
		if option == value {
			field.Option = index
			break
		}
	}
	return field
}

// FocusedField returns the index of the focused field.
func (modal *FormModal) FocusedField() int {
	return modal.focus
}

// Value returns the current value of field index: the text for input
// fields, the selected option for selector fields.
func (modal *FormModal) Value(index int) string {
	field := modal.Fields[index]
	if len(field.Options) > 0 {
		return field.Options[field.Option]
	}
	return strings.TrimSpace(field.Input.Value())
}

// Update processes a key message. Tab/shift+tab cycle field focus,
// left/right step selector fields, everything else goes to the
// focused text input. Enter and escape are the owning page's
// responsibility; they never reach the modal.
func (modal *FormModal) Update(message tea.KeyMsg) tea.Cmd {
	switch message.Type {
	case tea.KeyTab:
		modal.moveFocus(1)
		return nil
	case tea.KeyShiftTab:
		modal.moveFocus(-1)
		return nil
	}

	field := &modal.Fields[modal.focus]
	if len(field.Options) > 0 {
		switch message.Type {
		case tea.KeyLeft:
			field.Option--
			if field.Option < 0 {
				field.Option = len(field.Options) - 1
			}
		case tea.KeyRight:
			field.Option++
			if field.Option >= len(field.Options) {
				field.Option = 0
			}
		}
		return nil
	}

	var command tea.Cmd
	field.Input, command = field.Input.Update(message)
	return command
}

func (modal *FormModal) moveFocus(direction int) {
	modal.Fields[modal.focus].Input.Blur()
	modal.focus += direction
	if modal.focus < 0 {
		modal.focus = len(modal.Fields) - 1
	}
	if modal.focus >= len(modal.Fields) {
		modal.focus = 0
	}
	if modal.Fields[modal.focus].Options == nil {
		modal.Fields[modal.focus].Input.Focus()
	}
}

// Render produces the modal overlay lines and the anchor position for
// splicing onto the view, centered on screen.
func (modal FormModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	labelWidth := 0
	for _, field := range modal.Fields {
		if width := ansi.StringWidth(field.Label); width > labelWidth {
			labelWidth = width
		}
	}

	innerWidth := 48
	if innerWidth > screenWidth-6 {
		innerWidth = screenWidth - 6
	}

	bgStyle := lipgloss.NewStyle().
		Background(modal.theme.ModalBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.ModalBackground)
	labelStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)
	focusedLabelStyle := lipgloss.NewStyle().
		Foreground(modal.theme.AccentColor).
		Background(modal.theme.ModalBackground)
	valueStyle := lipgloss.NewStyle().
		Foreground(modal.theme.NormalText).
		Background(modal.theme.ModalBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)

	padLine := func(line string) string {
		lineWidth := ansi.StringWidth(line)
		if lineWidth < innerWidth {
			line += bgStyle.Render(strings.Repeat(" ", innerWidth-lineWidth))
		}
		return line
	}

	var lines []string
	lines = append(lines, padLine(titleStyle.Render(modal.Title)))
	lines = append(lines, padLine(""))

	for index, field := range modal.Fields {
		label := field.Label + strings.Repeat(" ", labelWidth-ansi.StringWidth(field.Label))
		style := labelStyle
		if index == modal.focus {
			style = focusedLabelStyle
		}

		var value string
		if len(field.Options) > 0 {
			marker := "  "
			if index == modal.focus {
				marker = "◂ "
			}
			value = valueStyle.Render(marker + field.Options[field.Option])
			if index == modal.focus {
				value += valueStyle.Render(" ▸")
			}
		} else {
			value = field.Input.View()
		}

		lines = append(lines, padLine(style.Render(label+"  ")+value))
	}

	lines = append(lines, padLine(""))
	lines = append(lines, padLine(footerStyle.Render("Tab další pole  Enter uložit  Esc zrušit")))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.ModalBackground).
		Padding(0, 1)

	rendered := borderStyle.Render(strings.Join(lines, "\n"))
	resultLines := strings.Split(rendered, "\n")

	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}
	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return resultLines, anchorX, anchorY
}
