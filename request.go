package stepwise

// DefaultLLM is the model selector sent when the caller does not supply one.
const DefaultLLM = "gpt-4.1-mini"

// Request carries one agent query and its optional tuning parameters.
// The server uses its own defaults for nil fields.
type Request struct {
	Query            string
	LLM              string   // empty = DefaultLLM
	Temperature      *float64 // nil = server default
	TimeoutSeconds   *int     // code execution timeout, nil = server default
	UseToolRetriever *bool
	CommercialMode   *bool
	DataPath         string
}

// WithDefaults returns r with empty fields filled from defaults. Query is
// never taken from defaults.
func (r Request) WithDefaults(defaults Request) Request {
	if r.LLM == "" {
		r.LLM = defaults.LLM
	}
	if r.LLM == "" {
		r.LLM = DefaultLLM
	}
	if r.Temperature == nil {
		r.Temperature = defaults.Temperature
	}
	if r.TimeoutSeconds == nil {
		r.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if r.UseToolRetriever == nil {
		r.UseToolRetriever = defaults.UseToolRetriever
	}
	if r.CommercialMode == nil {
		r.CommercialMode = defaults.CommercialMode
	}
	if r.DataPath == "" {
		r.DataPath = defaults.DataPath
	}
	return r
}
