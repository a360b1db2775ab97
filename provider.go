package stepwise

import "context"

// Client opens streaming agent requests. It is the transport strategy the
// Controller drives.
type Client interface {
	Stream(ctx context.Context, req Request) (Stream, error)
}
