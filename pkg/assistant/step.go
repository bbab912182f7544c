// Package assistant implements the plan/action/observe/output dialogue loop
// between a user, an OpenAI-compatible completion endpoint and a set of tools.
package assistant

import "encoding/json"

// StepKind tags one structured unit of the model's reasoning.
type StepKind string

const (
	StepPlan    StepKind = "plan"
	StepAction  StepKind = "action"
	StepObserve StepKind = "observe"
	StepOutput  StepKind = "output"
)

// Step is the JSON reply shape the system prompt asks the model to produce.
// Function and Input are only set for action steps.
type Step struct {
	Kind     StepKind `json:"step"`
	Content  string   `json:"content"`
	Function string   `json:"function,omitempty"`
	Input    string   `json:"input,omitempty"`
}

// ParseStep decodes a raw model reply into a Step. A reply that is not valid
// JSON for the Step shape yields an error; the tag value itself is not
// checked here, the loop dispatches on it.
func ParseStep(raw string) (Step, error) {
	var step Step
	if err := json.Unmarshal([]byte(raw), &step); err != nil {
		return Step{}, err
	}
	return step, nil
}

// Encode returns the canonical JSON serialization of the step, the form that
// is appended back into the conversation.
func (s Step) Encode() string {
	data, err := json.Marshal(s)
	if err != nil {
		// Step only holds strings, marshalling cannot fail.
		panic(err)
	}
	return string(data)
}
