package biomni

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/stepwise"
)

// ParseFrame classifies one event payload. Payloads that are not JSON
// objects return an error wrapping [stepwise.ErrMalformedFrame].
//
// Classification follows the server's sentinels: output "[DONE]" with status
// "completed" ends the stream successfully, status "error" ends it with the
// output as message, and anything else is a step update whose non-empty
// string fields thought, observation, code and solution become the message.
func ParseFrame(payload string) (stepwise.Frame, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", stepwise.ErrMalformedFrame, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: null payload", stepwise.ErrMalformedFrame)
	}

	status := stringField(fields, "status")
	output := stringField(fields, "output")
	switch {
	case output == doneOutput && status == statusCompleted:
		return stepwise.FrameDone{}, nil
	case status == statusError:
		return stepwise.FrameError{Message: output}, nil
	}

	return stepwise.FrameStep{Message: stepMessage(fields)}, nil
}

func stepMessage(fields map[string]json.RawMessage) stepwise.StepMessage {
	return stepwise.StepMessage{
		Thought:     stringField(fields, "thought"),
		Observation: stringField(fields, "observation"),
		Code:        stringField(fields, "code"),
		Solution:    stringField(fields, "solution"),
	}
}

// stringField returns the named field when it holds a JSON string, and ""
// when it is missing, null or of another type.
func stringField(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
