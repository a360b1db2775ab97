package stepwise

import "time"

// DefaultIdleTimeout is how long a session may go without a frame before it
// fails. The agent can spend minutes inside a single tool call.
const DefaultIdleTimeout = 10 * time.Minute

// Config holds user settings for a client session. Zero values mean "not
// set" so that several sources can be layered with Merge.
type Config struct {
	BaseURL     string
	LLM         string
	IdleTimeout time.Duration

	Temperature      *float64
	TimeoutSeconds   *int
	UseToolRetriever *bool
	CommercialMode   *bool
	DataPath         string

	// DropPartialOnError removes the steps of a failed session from the
	// transcript, leaving only the error.
	DropPartialOnError bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		LLM:         DefaultLLM,
		IdleTimeout: DefaultIdleTimeout,
	}
}

// Merge returns c with every field set in over replacing the one in c.
func (c Config) Merge(over Config) Config {
	if over.BaseURL != "" {
		c.BaseURL = over.BaseURL
	}
	if over.LLM != "" {
		c.LLM = over.LLM
	}
	if over.IdleTimeout != 0 {
		c.IdleTimeout = over.IdleTimeout
	}
	if over.Temperature != nil {
		c.Temperature = over.Temperature
	}
	if over.TimeoutSeconds != nil {
		c.TimeoutSeconds = over.TimeoutSeconds
	}
	if over.UseToolRetriever != nil {
		c.UseToolRetriever = over.UseToolRetriever
	}
	if over.CommercialMode != nil {
		c.CommercialMode = over.CommercialMode
	}
	if over.DataPath != "" {
		c.DataPath = over.DataPath
	}
	if over.DropPartialOnError {
		c.DropPartialOnError = true
	}
	return c
}

// Request returns the agent parameters of c as request defaults.
func (c Config) Request() Request {
	return Request{
		LLM:              c.LLM,
		Temperature:      c.Temperature,
		TimeoutSeconds:   c.TimeoutSeconds,
		UseToolRetriever: c.UseToolRetriever,
		CommercialMode:   c.CommercialMode,
		DataPath:         c.DataPath,
	}
}
