package bubbletea_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/stepwise"
	bt "github.com/fwojciec/stepwise/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestErrorBlock_View(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(stepwise.DefaultTheme())
	view := bt.NewErrorBlock(&stepwise.AgentError{Message: "Error: kernel died"}, styles).View(80)
	assert.Contains(t, view, "✗ Agent error: Error: kernel died")
}

func TestErrorLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "agent error shows the message verbatim",
			err:  fmt.Errorf("wrapped: %w", &stepwise.AgentError{Message: "out of memory"}),
			want: "✗ Agent error: out of memory",
		},
		{
			name: "server error",
			err:  fmt.Errorf("biomni: %w", &stepwise.HTTPError{StatusCode: 503}),
			want: "✗ Server error: biomni: HTTP error: status 503",
		},
		{
			name: "idle timeout",
			err:  fmt.Errorf("%w: no data received for 1s", stepwise.ErrIdleTimeout),
			want: "✗ Timed out: " + stepwise.ErrIdleTimeout.Error() + ": no data received for 1s",
		},
		{
			name: "stream ended early",
			err:  fmt.Errorf("biomni: %w", stepwise.ErrUnexpectedEOF),
			want: "✗ Connection lost: biomni: unexpected end of stream",
		},
		{
			name: "anything else",
			err:  errors.New("dial tcp: connection refused"),
			want: "✗ Error: dial tcp: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bt.ErrorLine(tt.err))
		})
	}
}

func TestOutcomeBlock_View(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(stepwise.DefaultTheme())

	tests := []struct {
		status stepwise.Status
		steps  int
		want   string
	}{
		{status: stepwise.StatusCompleted, steps: 4, want: "✓ Completed · 4 steps"},
		{status: stepwise.StatusCompleted, steps: 1, want: "✓ Completed · 1 step"},
		{status: stepwise.StatusSuperseded, steps: 0, want: "■ Stopped after 0 steps"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, bt.NewOutcomeBlock(tt.status, tt.steps, styles).View(80), tt.want)
		})
	}
}

func TestQueryBlock_View(t *testing.T) {
	t.Parallel()

	view := bt.NewQueryBlock("Find genes linked to ALS", bt.NewStyles(stepwise.DefaultTheme())).View(80)
	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "Find genes linked to ALS")
}
