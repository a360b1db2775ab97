package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/stepwise"
	bt "github.com/fwojciec/stepwise/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestBlockSeparator(t *testing.T) {
	t.Parallel()

	theme := stepwise.DefaultTheme()
	styles := bt.NewStyles(theme)

	query := bt.NewQueryBlock("q", styles)
	step := bt.NewStepBlock(stepwise.KindThought, "t", 1, theme, styles)
	done := bt.NewOutcomeBlock(stepwise.StatusCompleted, 1, styles)
	errBlock := bt.NewErrorBlock(assert.AnError, styles)

	tests := []struct {
		name       string
		prev, curr bt.MessageBlock
		want       string
	}{
		{"query then step", query, step, "\n\n"},
		{"step then step", step, step, "\n\n"},
		{"step then outcome", step, done, "\n"},
		{"query then outcome", query, done, "\n\n"},
		{"step then error", step, errBlock, "\n\n"},
		{"outcome then query", done, query, "\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bt.BlockSeparator(tt.prev, tt.curr))
		})
	}
}
