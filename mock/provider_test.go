package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/stepwise"
	"github.com/fwojciec/stepwise/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Stream(t *testing.T) {
	t.Parallel()
	t.Run("hands back the scripted stream", func(t *testing.T) {
		t.Parallel()
		stream := mock.Replay(stepwise.FrameDone{})
		c := mock.Client{
			StreamFn: func(ctx context.Context, req stepwise.Request) (stepwise.Stream, error) {
				assert.Equal(t, "plan a screen", req.Query)
				return stream, nil
			},
		}
		got, err := c.Stream(context.Background(), stepwise.Request{Query: "plan a screen"})
		require.NoError(t, err)
		f, err := got.Next()
		require.NoError(t, err)
		assert.Equal(t, stepwise.FrameDone{}, f)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("connection refused")
		c := mock.Client{
			StreamFn: func(ctx context.Context, req stepwise.Request) (stepwise.Stream, error) {
				return nil, wantErr
			},
		}
		_, err := c.Stream(context.Background(), stepwise.Request{})
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when StreamFn not set", func(t *testing.T) {
		t.Parallel()
		c := mock.Client{}
		assert.Panics(t, func() {
			_, _ = c.Stream(context.Background(), stepwise.Request{})
		})
	})
}
