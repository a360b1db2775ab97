// Package mock provides test doubles for stepwise interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/stepwise"
)

// Interface compliance check.
var _ stepwise.Client = (*Client)(nil)

// Client is a test double for stepwise.Client.
// Set StreamFn before calling Stream.
type Client struct {
	StreamFn func(ctx context.Context, req stepwise.Request) (stepwise.Stream, error)
}

// Stream delegates to StreamFn.
func (c *Client) Stream(ctx context.Context, req stepwise.Request) (stepwise.Stream, error) {
	return c.StreamFn(ctx, req)
}
