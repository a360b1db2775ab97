package bubbletea_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/stepwise"
	bt "github.com/fwojciec/stepwise/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStepBlock_View(t *testing.T) {
	t.Parallel()

	theme := stepwise.DefaultTheme()
	styles := bt.NewStyles(theme)

	tests := []struct {
		kind  stepwise.StepKind
		text  string
		label string
		want  []string
	}{
		{stepwise.KindThought, "I should query **UniProt** first.", "Thinking", []string{"UniProt first."}},
		{stepwise.KindObservation, "  col1  col2\n  a     b", "Observation", []string{"col1  col2", "a     b"}},
		{stepwise.KindCode, "import scanpy as sc\nsc.pp.pca(adata)", "Code Execution", []string{"python", "│ import scanpy as sc", "│ sc.pp.pca(adata)"}},
		{stepwise.KindSolution, "## Answer\n\nLogP is 3.5", "Solution", []string{"Answer", "LogP is 3.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			b := bt.NewStepBlock(tt.kind, tt.text, 3, theme, styles)
			view := b.View(80)
			header, _, _ := strings.Cut(view, "\n")
			assert.Contains(t, header, tt.label)
			assert.Contains(t, header, "Step 3")
			for _, w := range tt.want {
				assert.Contains(t, view, w)
			}
		})
	}
}

func TestStepBlock_Collapse(t *testing.T) {
	t.Parallel()

	theme := stepwise.DefaultTheme()
	styles := bt.NewStyles(theme)

	longObservation := "first result line\n" + strings.Repeat("more output\n", 20)

	t.Run("short observation starts expanded", func(t *testing.T) {
		t.Parallel()
		b := bt.NewStepBlock(stepwise.KindObservation, "ok", 1, theme, styles)
		assert.True(t, b.Collapsible())
		assert.False(t, b.Collapsed())
		assert.Contains(t, b.View(80), "▼ Observation")
	})

	t.Run("long observation starts collapsed with preview", func(t *testing.T) {
		t.Parallel()
		b := bt.NewStepBlock(stepwise.KindObservation, longObservation, 1, theme, styles)
		assert.True(t, b.Collapsed())

		view := b.View(80)
		assert.Contains(t, view, "▶ Observation")
		assert.Contains(t, view, "first result line")
		assert.Contains(t, view, "21 lines")
		assert.NotContains(t, view, "more output")
	})

	t.Run("toggle expands and collapses", func(t *testing.T) {
		t.Parallel()
		b := bt.NewStepBlock(stepwise.KindObservation, longObservation, 1, theme, styles)
		b.Update(bt.ToggleMsg{})
		assert.False(t, b.Collapsed())
		assert.Contains(t, b.View(80), "more output")

		b.Update(bt.ToggleMsg{})
		assert.True(t, b.Collapsed())
	})

	t.Run("other kinds ignore toggle", func(t *testing.T) {
		t.Parallel()
		b := bt.NewStepBlock(stepwise.KindThought, strings.Repeat("line\n\n", 20), 1, theme, styles)
		assert.False(t, b.Collapsible())
		b.Update(bt.ToggleMsg{})
		assert.False(t, b.Collapsed())
	})

	t.Run("preview fits the width", func(t *testing.T) {
		t.Parallel()
		wide := strings.Repeat("基因", 40) + "\n" + strings.Repeat("x\n", 20)
		b := bt.NewStepBlock(stepwise.KindObservation, wide, 1, theme, styles)
		_, preview, _ := strings.Cut(b.View(40), "\n")
		assert.Contains(t, preview, "…")
		assert.LessOrEqual(t, lipglossWidth(preview), 40)
	})
}
