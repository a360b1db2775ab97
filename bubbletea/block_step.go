package bubbletea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/stepwise"
	"github.com/fwojciec/stepwise/goldmark"
	"github.com/mattn/go-runewidth"
)

var _ MessageBlock = (*StepBlock)(nil)

// collapseThreshold is the line count above which an observation starts
// collapsed.
const collapseThreshold = 8

// StepBlock renders one agent step under a labelled, numbered header.
// Observations are collapsible; other kinds are always expanded.
type StepBlock struct {
	kind      stepwise.StepKind
	text      string
	number    int
	collapsed bool
	theme     stepwise.Theme
	styles    Styles

	// Rendered body for cachedWidth. Markdown rendering is too slow to
	// repeat for every block on every event.
	cachedWidth int
	cachedBody  string
}

// NewStepBlock creates a StepBlock for the number-th step of a session.
func NewStepBlock(kind stepwise.StepKind, text string, number int, theme stepwise.Theme, styles Styles) *StepBlock {
	b := &StepBlock{
		kind:   kind,
		text:   text,
		number: number,
		theme:  theme,
		styles: styles,
	}
	b.collapsed = b.Collapsible() && strings.Count(strings.TrimRight(text, "\n"), "\n")+1 > collapseThreshold
	return b
}

// Kind returns the step kind.
func (b *StepBlock) Kind() stepwise.StepKind { return b.kind }

// Collapsible reports whether the block responds to ToggleMsg.
func (b *StepBlock) Collapsible() bool { return b.kind == stepwise.KindObservation }

// Collapsed reports whether the block shows only a preview.
func (b *StepBlock) Collapsed() bool { return b.collapsed }

func (b *StepBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	if _, ok := msg.(ToggleMsg); ok && b.Collapsible() {
		b.collapsed = !b.collapsed
	}
	return b, nil
}

func (b *StepBlock) View(width int) string {
	header := b.header()
	if b.collapsed {
		return header + "\n" + b.preview(width)
	}
	if width != b.cachedWidth || b.cachedBody == "" {
		b.cachedBody = b.body(width)
		b.cachedWidth = width
	}
	return header + "\n" + b.cachedBody
}

func (b *StepBlock) header() string {
	indicator := "●"
	if b.Collapsible() {
		indicator = "▼"
		if b.collapsed {
			indicator = "▶"
		}
	}
	title := b.styles.Step(b.kind).Render(indicator + " " + b.kind.Label())
	return title + b.styles.Muted.Render(fmt.Sprintf(" · Step %d", b.number))
}

func (b *StepBlock) body(width int) string {
	switch b.kind {
	case stepwise.KindCode:
		return goldmark.RenderCode(b.text, width, b.theme)
	case stepwise.KindObservation:
		// Tool output is preformatted; wrap it without markdown.
		return lipgloss.NewStyle().Width(width).Render(strings.TrimRight(b.text, "\n"))
	default:
		return goldmark.Render(b.text, width, b.theme)
	}
}

// preview shows the first non-blank line of a collapsed step, cut to fit on
// one terminal row.
func (b *StepBlock) preview(width int) string {
	lines := strings.Split(strings.TrimRight(b.text, "\n"), "\n")
	first := ""
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			first = strings.TrimSpace(l)
			break
		}
	}
	more := b.styles.Muted.Render(fmt.Sprintf(" (%d lines, Tab to expand)", len(lines)))
	room := width - lipgloss.Width(more)
	if room < 10 {
		room = 10
	}
	return runewidth.Truncate(first, room, "…") + more
}
