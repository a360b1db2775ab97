package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/stepwise"
	bt "github.com/fwojciec/stepwise/bubbletea"
	"github.com/fwojciec/stepwise/goldmark"
)

// printer writes steps and session outcomes for the non-interactive
// commands, either rendered for a terminal or as JSON lines.
type printer struct {
	w      io.Writer
	json   bool
	width  int
	theme  stepwise.Theme
	styles bt.Styles
	steps  int
	err    error // first write error
}

func newPrinter(w io.Writer, jsonLines bool, width int) *printer {
	theme := stepwise.DefaultTheme()
	return &printer{
		w:      w,
		json:   jsonLines,
		width:  width,
		theme:  theme,
		styles: bt.NewStyles(theme),
	}
}

// jsonRecord is one line of JSON output.
type jsonRecord struct {
	Session uint64 `json:"session,omitempty"`
	Step    int    `json:"step,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Text    string `json:"text,omitempty"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

// message prints every populated slot of msg as its own step.
func (p *printer) message(session stepwise.SessionID, msg stepwise.StepMessage) {
	for _, part := range msg.Split() {
		kind, _ := part.Kind()
		p.steps++
		if p.json {
			p.record(jsonRecord{Session: uint64(session), Step: p.steps, Kind: kind.String(), Text: part.Text(kind)})
			continue
		}
		p.write(p.renderStep(kind, part.Text(kind)) + "\n\n")
	}
}

func (p *printer) renderStep(kind stepwise.StepKind, text string) string {
	header := p.styles.Step(kind).Render(kind.Label()) + p.styles.Muted.Render(fmt.Sprintf(" · Step %d", p.steps))
	var body string
	switch kind {
	case stepwise.KindCode:
		body = goldmark.RenderCode(text, p.width, p.theme)
	case stepwise.KindObservation:
		body = lipgloss.NewStyle().Width(p.width).Render(strings.TrimRight(text, "\n"))
	default:
		body = goldmark.Render(text, p.width, p.theme)
	}
	return header + "\n" + body
}

// outcome prints how a session ended.
func (p *printer) outcome(session stepwise.SessionID, status stepwise.Status, err error) {
	if p.json {
		rec := jsonRecord{Session: uint64(session), Status: status.String()}
		if err != nil {
			rec.Error = err.Error()
		}
		p.record(rec)
		return
	}
	switch status {
	case stepwise.StatusCompleted:
		p.write(p.styles.Success.Render(fmt.Sprintf("✓ Completed in %d steps", p.steps)) + "\n")
	case stepwise.StatusFailed:
		p.write(p.styles.Error.Render(bt.ErrorLine(err)) + "\n")
	}
}

func (p *printer) record(rec jsonRecord) {
	line, err := json.Marshal(rec)
	if err != nil {
		p.fail(err)
		return
	}
	p.write(string(line) + "\n")
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.w, s); err != nil {
		p.fail(err)
	}
}

func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
