// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	markdownParserOnce sync.Once
	markdownParser     goldmark.Markdown

	markdownStylesOnce sync.Once
	markdownStyles     *lipgloss.Renderer
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParser = goldmark.New()
	})
	return markdownParser
}

// getMarkdownStyles returns a lipgloss renderer forced to the ANSI256
// color profile. Markdown output is always for terminal display
// inside the TUI, so auto-detection would produce uncolored output in
// test environments with no TTY. SetColorProfile is required because
// lipgloss.Renderer.ColorProfile() ignores the termenv.Output profile
// and re-detects from the environment unless explicitly set.
func getMarkdownStyles() *lipgloss.Renderer {
	markdownStylesOnce.Do(func() {
		markdownStyles = lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
		markdownStyles.SetColorProfile(termenv.ANSI256)
	})
	return markdownStyles
}

// RenderMarkdown renders markdown source as styled terminal text
// wrapped to the given width. Used for the AI analysis modal, where
// the backend returns its commentary as markdown with headings,
// lists, and the occasional code block.
//
// The renderer covers the block types the analysis text actually
// uses: headings, paragraphs, lists, blockquotes, fenced code, and
// thematic breaks. Raw HTML is dropped.
func RenderMarkdown(source string, theme Theme, width int) string {
	if width < 10 {
		width = 10
	}

	sourceBytes := []byte(source)
	document := getMarkdownParser().Parser().Parse(text.NewReader(sourceBytes))

	renderer := markdownWriter{
		theme:  theme,
		width:  width,
		source: sourceBytes,
	}
	renderer.renderBlocks(document, 0)
	return strings.TrimRight(renderer.output.String(), "\n")
}

// markdownWriter accumulates rendered lines. Blocks are rendered
// depth-first; indent is the current list nesting level.
type markdownWriter struct {
	theme  Theme
	width  int
	source []byte
	output strings.Builder
}

func (writer *markdownWriter) renderBlocks(parent ast.Node, indent int) {
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		switch block := node.(type) {
		case *ast.Heading:
			writer.renderHeading(block)
		case *ast.Paragraph, *ast.TextBlock:
			writer.renderParagraph(node, indent)
		case *ast.List:
			writer.renderList(block, indent)
		case *ast.Blockquote:
			writer.renderBlockquote(block, indent)
		case *ast.FencedCodeBlock:
			writer.renderCode(writer.blockLines(block), string(block.Language(writer.source)), indent)
		case *ast.CodeBlock:
			writer.renderCode(writer.blockLines(block), "", indent)
		case *ast.ThematicBreak:
			rule := getMarkdownStyles().NewStyle().Foreground(writer.theme.BorderColor)
			writer.output.WriteString(rule.Render(strings.Repeat("─", writer.width)) + "\n\n")
		}
	}
}

func (writer *markdownWriter) renderHeading(heading *ast.Heading) {
	style := getMarkdownStyles().NewStyle().Bold(true).Foreground(writer.theme.AccentColor)
	if heading.Level >= 3 {
		style = getMarkdownStyles().NewStyle().Bold(true).Foreground(writer.theme.HeaderForeground)
	}
	writer.output.WriteString(style.Render(writer.inlineText(heading)) + "\n\n")
}

func (writer *markdownWriter) renderParagraph(node ast.Node, indent int) {
	prefix := strings.Repeat("  ", indent)
	wrapped := ansi.Wordwrap(writer.inlineText(node), writer.width-len(prefix), "")
	for _, line := range strings.Split(wrapped, "\n") {
		writer.output.WriteString(prefix + line + "\n")
	}
	writer.output.WriteString("\n")
}

func (writer *markdownWriter) renderList(list *ast.List, indent int) {
	bulletStyle := getMarkdownStyles().NewStyle().Foreground(writer.theme.AccentColor)
	itemNumber := list.Start
	if itemNumber == 0 {
		itemNumber = 1
	}

	prefix := strings.Repeat("  ", indent)
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if list.IsOrdered() {
			marker = strconv.Itoa(itemNumber) + "."
			itemNumber++
		}

		// First inline block on the marker line; nested blocks below.
		first := item.FirstChild()
		if first != nil {
			switch first.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				markerWidth := ansi.StringWidth(marker) + 1
				wrapped := ansi.Wordwrap(writer.inlineText(first), writer.width-len(prefix)-markerWidth, "")
				for lineIndex, line := range strings.Split(wrapped, "\n") {
					if lineIndex == 0 {
						writer.output.WriteString(prefix + bulletStyle.Render(marker) + " " + line + "\n")
					} else {
						writer.output.WriteString(prefix + strings.Repeat(" ", markerWidth) + line + "\n")
					}
				}
			}
		}
		// Nested lists and other trailing blocks.
		for child := first; child != nil; child = child.NextSibling() {
			if nested, ok := child.(*ast.List); ok {
				writer.renderList(nested, indent+1)
			}
		}
	}
	if !list.IsTight {
		writer.output.WriteString("\n")
	} else if indent == 0 {
		writer.output.WriteString("\n")
	}
}

func (writer *markdownWriter) renderBlockquote(quote *ast.Blockquote, indent int) {
	inner := markdownWriter{theme: writer.theme, width: writer.width - 2, source: writer.source}
	inner.renderBlocks(quote, indent)

	barStyle := getMarkdownStyles().NewStyle().Foreground(writer.theme.BorderColor)
	quoted := strings.TrimRight(inner.output.String(), "\n")
	for _, line := range strings.Split(quoted, "\n") {
		writer.output.WriteString(barStyle.Render("│ ") + line + "\n")
	}
	writer.output.WriteString("\n")
}

func (writer *markdownWriter) renderCode(code, language string, indent int) {
	prefix := strings.Repeat("  ", indent)

	highlighted := code
	if language != "" {
		var buffer bytes.Buffer
		if err := quick.Highlight(&buffer, code, language, "terminal256", "monokai"); err == nil {
			highlighted = buffer.String()
		}
	}

	codeStyle := getMarkdownStyles().NewStyle().Foreground(writer.theme.FaintText)
	for _, line := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
		if language == "" {
			line = codeStyle.Render(line)
		}
		writer.output.WriteString(prefix + "  " + line + "\n")
	}
	writer.output.WriteString("\n")
}

// blockLines concatenates the raw source lines of a code block.
func (writer *markdownWriter) blockLines(node ast.Node) string {
	var buffer bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buffer.Write(segment.Value(writer.source))
	}
	return buffer.String()
}

// inlineText renders the inline children of a block: emphasis becomes
// bold/italic, code spans get the faint color, links keep their text
// with the accent color. Structure beyond that is flattened.
func (writer *markdownWriter) inlineText(parent ast.Node) string {
	var result strings.Builder
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		switch inline := node.(type) {
		case *ast.Text:
			result.Write(inline.Segment.Value(writer.source))
			if inline.SoftLineBreak() {
				result.WriteString(" ")
			}
			if inline.HardLineBreak() {
				result.WriteString("\n")
			}
		case *ast.Emphasis:
			style := getMarkdownStyles().NewStyle().Italic(true)
			if inline.Level >= 2 {
				style = getMarkdownStyles().NewStyle().Bold(true)
			}
			result.WriteString(style.Render(writer.inlineText(inline)))
		case *ast.CodeSpan:
			style := getMarkdownStyles().NewStyle().Foreground(writer.theme.FaintText)
			result.WriteString(style.Render(writer.inlineText(inline)))
		case *ast.Link:
			style := getMarkdownStyles().NewStyle().Foreground(writer.theme.AccentColor).Underline(true)
			result.WriteString(style.Render(writer.inlineText(inline)))
		default:
			if node.Type() == ast.TypeInline {
				result.WriteString(writer.inlineText(node))
			}
		}
	}
	return result.String()
}
