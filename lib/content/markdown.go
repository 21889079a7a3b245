// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// The parser configuration never changes and a goldmark Markdown is
// safe to share; each Parse call builds its own state.
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once

	lipRendererInstance *lipgloss.Renderer
	lipRendererOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParserInstance
}

// getLipRenderer returns a lipgloss renderer pinned to the ANSI256
// profile. Card bodies are always terminal output, so auto-detection
// (which produces uncolored output without a TTY) is bypassed.
// SetColorProfile is required because Renderer.ColorProfile ignores
// the termenv.Output profile unless set explicitly.
func getLipRenderer() *lipgloss.Renderer {
	lipRendererOnce.Do(func() {
		lipRendererInstance = lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
		lipRendererInstance.SetColorProfile(termenv.ANSI256)
	})
	return lipRendererInstance
}

// MarkdownStyle carries the colors the body renderer needs. Card
// bodies sit on pale accent backgrounds, so everything is drawn in
// one dark foreground with a muted variant for code.
type MarkdownStyle struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
}

// RenderMarkdown parses markdown text and renders it as styled
// terminal lines wrapped to width. Soft line breaks become spaces so
// hard-wrapped source reflows at any card width. Supported blocks are
// paragraphs, headings, lists, fenced code (highlighted by chroma),
// indented code and thematic breaks.
func RenderMarkdown(input string, style MarkdownStyle, width int) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	if width < 4 {
		width = 4
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	renderer := &markdownRenderer{
		source:      source,
		style:       style,
		width:       width,
		lipRenderer: getLipRenderer(),
	}
	ast.Walk(document, renderer.walk)

	output := strings.TrimRight(renderer.output.String(), "\n")
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}

// markdownRenderer walks a goldmark AST with accumulate-then-wrap
// semantics: inline content collects in a buffer and is word-wrapped
// as a unit when its block closes.
type markdownRenderer struct {
	source []byte
	style  MarkdownStyle
	width  int

	output strings.Builder
	inline strings.Builder

	linePrefix    string
	pendingBullet string
	listStack     []listState

	boldCount          int
	italicCount        int
	strikethroughCount int

	lipRenderer      *lipgloss.Renderer
	trailingNewlines int
}

type listState struct {
	ordered bool
	counter int
	tight   bool
}

func (renderer *markdownRenderer) newStyle() lipgloss.Style {
	return renderer.lipRenderer.NewStyle()
}

func (renderer *markdownRenderer) currentWidth() int {
	width := renderer.width - ansi.StringWidth(renderer.linePrefix)
	if width < 4 {
		width = 4
	}
	return width
}

func (renderer *markdownRenderer) inTightList() bool {
	if len(renderer.listStack) == 0 {
		return false
	}
	return renderer.listStack[len(renderer.listStack)-1].tight
}

func (renderer *markdownRenderer) writeOutput(s string) {
	if s == "" {
		return
	}
	renderer.output.WriteString(s)
	trailing := len(s) - len(strings.TrimRight(s, "\n"))
	if trailing == len(s) {
		renderer.trailingNewlines += trailing
	} else {
		renderer.trailingNewlines = trailing
	}
}

func (renderer *markdownRenderer) ensureNewline() {
	if renderer.output.Len() > 0 && renderer.trailingNewlines < 1 {
		renderer.writeOutput("\n")
	}
}

// ensureBlankLine separates blocks. Nothing is emitted at the very
// start of the output so cards don't open with an empty row.
func (renderer *markdownRenderer) ensureBlankLine() {
	if renderer.output.Len() == 0 {
		return
	}
	for renderer.trailingNewlines < 2 {
		renderer.writeOutput("\n")
	}
}

func (renderer *markdownRenderer) applyPrefixes(content string) string {
	lines := strings.Split(content, "\n")
	for index, line := range lines {
		prefix := renderer.linePrefix
		if index == 0 && renderer.pendingBullet != "" {
			prefix = renderer.pendingBullet
			renderer.pendingBullet = ""
		}
		lines[index] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (renderer *markdownRenderer) flushInline() string {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if content == "" {
		return ""
	}
	return renderer.applyPrefixes(ansi.Wrap(content, renderer.currentWidth(), " ,.;-+|"))
}

func (renderer *markdownRenderer) styledText(content string) string {
	style := renderer.newStyle().Foreground(renderer.style.Foreground)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	if renderer.strikethroughCount > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(content)
}

func (renderer *markdownRenderer) mutedText(content string) string {
	return renderer.newStyle().Foreground(renderer.style.Muted).Render(content)
}

// highlightCode uses chroma to highlight a fenced block. Unknown
// languages and chroma errors fall back to muted plain text.
func (renderer *markdownRenderer) highlightCode(code, language string) string {
	if language == "" {
		return renderer.mutedText(code)
	}
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, code, language, "terminal256", "github"); err != nil {
		return renderer.mutedText(code)
	}
	return buffer.String()
}

func (renderer *markdownRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			renderer.inline.Reset()
			return ast.WalkContinue, nil
		}
		if flushed := renderer.flushInline(); flushed != "" {
			renderer.writeOutput(flushed)
			renderer.ensureNewline()
			if !renderer.inTightList() {
				renderer.ensureBlankLine()
			}
		}

	case ast.KindHeading:
		if entering {
			renderer.inline.Reset()
			return ast.WalkContinue, nil
		}
		content := ansi.Strip(renderer.inline.String())
		renderer.inline.Reset()
		if content != "" {
			heading := renderer.newStyle().Foreground(renderer.style.Foreground).Bold(true).Underline(true)
			renderer.ensureBlankLine()
			renderer.writeOutput(renderer.applyPrefixes(ansi.Wrap(heading.Render(content), renderer.currentWidth(), " ")))
			renderer.ensureNewline()
			renderer.ensureBlankLine()
		}

	case ast.KindFencedCodeBlock:
		if entering {
			block := node.(*ast.FencedCodeBlock)
			language := string(block.Language(renderer.source))
			renderer.writeCode(renderer.highlightCode(renderer.blockText(block), language))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindCodeBlock:
		if entering {
			renderer.writeCode(renderer.mutedText(renderer.blockText(node)))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindList:
		if entering {
			list := node.(*ast.List)
			state := listState{ordered: list.IsOrdered(), tight: list.IsTight}
			if state.ordered {
				state.counter = list.Start
			}
			renderer.listStack = append(renderer.listStack, state)
		} else {
			renderer.listStack = renderer.listStack[:len(renderer.listStack)-1]
			if !renderer.inTightList() {
				renderer.ensureBlankLine()
			}
		}

	case ast.KindListItem:
		renderer.handleListItem(entering)

	case ast.KindThematicBreak:
		if entering {
			renderer.ensureBlankLine()
			renderer.writeOutput(renderer.applyPrefixes(renderer.mutedText(strings.Repeat("─", renderer.currentWidth()))))
			renderer.ensureNewline()
			renderer.ensureBlankLine()
		}

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			renderer.inline.WriteString(renderer.styledText(string(textNode.Segment.Value(renderer.source))))
			if textNode.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			}
			if textNode.HardLineBreak() {
				renderer.inline.WriteString("\n")
			}
		}

	case ast.KindString:
		if entering {
			renderer.inline.WriteString(renderer.styledText(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		emphasis := node.(*ast.Emphasis)
		delta := 1
		if !entering {
			delta = -1
		}
		if emphasis.Level >= 2 {
			renderer.boldCount += delta
		} else {
			renderer.italicCount += delta
		}

	case ast.KindCodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					code.Write(textNode.Segment.Value(renderer.source))
				}
			}
			renderer.inline.WriteString(renderer.mutedText(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		// Link text renders through the normal inline path; the
		// destination is not shown, cards have no room for URLs.

	case extast.KindStrikethrough:
		if entering {
			renderer.strikethroughCount++
		} else {
			renderer.strikethroughCount--
		}
	}

	return ast.WalkContinue, nil
}

// blockText joins the raw source lines of a code block.
func (renderer *markdownRenderer) blockText(node ast.Node) string {
	var code strings.Builder
	lines := node.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(renderer.source))
	}
	return strings.ReplaceAll(code.String(), "\t", "    ")
}

// writeCode emits pre-styled code lines without wrapping; the card
// clips anything wider than itself.
func (renderer *markdownRenderer) writeCode(highlighted string) {
	renderer.ensureBlankLine()
	for _, line := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
		renderer.writeOutput(renderer.applyPrefixes(line))
		renderer.ensureNewline()
	}
	renderer.ensureBlankLine()
}

func (renderer *markdownRenderer) handleListItem(entering bool) {
	if len(renderer.listStack) == 0 {
		return
	}
	top := &renderer.listStack[len(renderer.listStack)-1]

	if !entering {
		renderer.linePrefix = renderer.linePrefix[:len(renderer.linePrefix)-top.bulletWidth()]
		if renderer.inTightList() {
			renderer.ensureNewline()
		} else {
			renderer.ensureBlankLine()
		}
		return
	}

	bullet := "• "
	if top.ordered {
		bullet = fmt.Sprintf("%d. ", top.counter)
		top.counter++
	}
	renderer.pendingBullet = renderer.linePrefix + bullet
	renderer.linePrefix += strings.Repeat(" ", top.bulletWidth())
}

// bulletWidth is the continuation indent for items of this list. It is
// fixed per list so entering and leaving an item always agree.
func (state listState) bulletWidth() int {
	if state.ordered {
		return 3
	}
	return 2
}
