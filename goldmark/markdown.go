// Package goldmark renders agent step text to ANSI-styled terminal output
// using goldmark for parsing and lipgloss for styling.
package goldmark

import (
	"strings"

	"github.com/fwojciec/stepwise"
)

// DefaultCodeLanguage labels code steps. The agent executes Python unless a
// cell starts with a bash or R marker.
const DefaultCodeLanguage = "python"

// Render parses GitHub-flavored markdown and returns ANSI-styled terminal
// output. Paragraphs and list items are word-wrapped to width; code blocks
// and tables are not reflowed.
func Render(source string, width int, theme stepwise.Theme) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}

// RenderCode renders an executed code cell as a fenced block labelled with
// its language.
func RenderCode(code string, width int, theme stepwise.Theme) string {
	code = strings.Trim(code, "\n")
	if code == "" {
		return ""
	}
	lang := codeLanguage(code)
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	return Render(fence+lang+"\n"+code+"\n"+fence, width, theme)
}

// codeLanguage infers the language of an agent code cell from its first
// line marker.
func codeLanguage(code string) string {
	first, _, _ := strings.Cut(strings.TrimLeft(code, " \t\n"), "\n")
	switch strings.TrimSpace(first) {
	case "#!BASH", "#!/bin/bash":
		return "bash"
	case "#!R":
		return "r"
	}
	return DefaultCodeLanguage
}
