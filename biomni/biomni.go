// Package biomni implements [stepwise.Client] for the Biomni agent server.
//
// The server exposes a streaming endpoint that emits one "data: {json}"
// line per agent step and finishes with a completion or error sentinel, a
// blocking endpoint that returns every step at once, and a health check.
package biomni

import "encoding/json"

const (
	defaultBaseURL = "http://localhost:8000"
	streamPath     = "/agent/stream"
	runPath        = "/agent/run"
	healthPath     = "/health"

	doneOutput      = "[DONE]"
	statusCompleted = "completed"
	statusError     = "error"
)

// apiRequest is the JSON body sent to both agent endpoints.
type apiRequest struct {
	Query            string   `json:"query"`
	LLM              string   `json:"llm"`
	Temperature      *float64 `json:"temperature,omitempty"`
	TimeoutSeconds   *int     `json:"timeout_seconds,omitempty"`
	UseToolRetriever *bool    `json:"use_tool_retriever,omitempty"`
	CommercialMode   *bool    `json:"commercial_mode,omitempty"`
	DataPath         string   `json:"data_path,omitempty"`
}

// apiRunResponse is the body of a successful /agent/run call.
type apiRunResponse struct {
	Status     string                       `json:"status"`
	Steps      []map[string]json.RawMessage `json:"steps"`
	TotalSteps int                          `json:"total_steps"`
}

// apiHealthResponse is the body of /health.
type apiHealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// apiErrorResponse is the FastAPI error body. Detail is a string for
// handler errors and a list of objects for validation errors.
type apiErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}
