package stepwise

import "fmt"

// Validate checks the constraints the agent server enforces on request
// parameters. An empty query is accepted; the server decides what to do
// with it.
func (r Request) Validate() error {
	if r.Temperature != nil {
		if *r.Temperature < 0 || *r.Temperature > 2 {
			return fmt.Errorf("temperature must be in [0, 2], got %g: %w", *r.Temperature, ErrValidation)
		}
	}
	if r.TimeoutSeconds != nil && *r.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d: %w", *r.TimeoutSeconds, ErrValidation)
	}
	return nil
}
