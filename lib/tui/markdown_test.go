// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// stripped renders markdown and returns ANSI-stripped visible text.
func stripped(input string, width int) string {
	return ansi.Strip(RenderMarkdown(input, DefaultTheme, width))
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if result := RenderMarkdown("", DefaultTheme, 80); result != "" {
		t.Errorf("expected empty string for empty input, got %q", result)
	}
}

func TestRenderMarkdownParagraphReflow(t *testing.T) {
	input := "Tvoje sázky na fotbal mají\nvýrazně lepší návratnost než\nsázky na hokej."
	result := stripped(input, 120)

	if strings.Contains(result, "\n") {
		t.Errorf("expected single line at width=120, got:\n%s", result)
	}
	if !strings.Contains(result, "mají výrazně lepší") {
		t.Errorf("expected soft break converted to space, got:\n%s", result)
	}
}

func TestRenderMarkdownWrapsToWidth(t *testing.T) {
	input := "A longer run of analysis text that must wrap at the requested rendering width."
	result := stripped(input, 30)

	for _, line := range strings.Split(result, "\n") {
		if ansi.StringWidth(line) > 30 {
			t.Errorf("line exceeds width 30: %q", line)
		}
	}
}

func TestRenderMarkdownHeadingAndList(t *testing.T) {
	input := "## Shrnutí\n\n- první bod\n- druhý bod\n"
	result := stripped(input, 60)

	if !strings.Contains(result, "Shrnutí") {
		t.Errorf("missing heading text:\n%s", result)
	}
	if !strings.Contains(result, "• první bod") || !strings.Contains(result, "• druhý bod") {
		t.Errorf("missing list bullets:\n%s", result)
	}
}

func TestRenderMarkdownOrderedList(t *testing.T) {
	input := "1. sniž vklady\n2. vynech live sázky\n"
	result := stripped(input, 60)

	if !strings.Contains(result, "1. sniž vklady") || !strings.Contains(result, "2. vynech live sázky") {
		t.Errorf("ordered list markers missing:\n%s", result)
	}
}

func TestRenderMarkdownCodeBlock(t *testing.T) {
	input := "```\nROI = profit / stake\n```\n"
	result := stripped(input, 60)

	if !strings.Contains(result, "ROI = profit / stake") {
		t.Errorf("code block content missing:\n%s", result)
	}
}

func TestRenderMarkdownBlockquote(t *testing.T) {
	input := "> pozor na viktorku\n"
	result := stripped(input, 60)

	if !strings.Contains(result, "│ pozor na viktorku") {
		t.Errorf("blockquote bar missing:\n%s", result)
	}
}
