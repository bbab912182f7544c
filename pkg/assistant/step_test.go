package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStepRoundTrip(t *testing.T) {
	original := Step{
		Kind:     StepAction,
		Content:  "Looking up the weather",
		Function: "get_weather",
		Input:    "Lahore",
	}

	parsed, err := ParseStep(original.Encode())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParseStepRejectsNonJSON(t *testing.T) {
	_, err := ParseStep("hello")
	assert.Error(t, err)
}

func TestParseStepKeepsUnknownTag(t *testing.T) {
	// Unknown tags are not rejected at decode time, the loop dispatches on
	// them and treats them as a terminal warning.
	step, err := ParseStep(`{"step":"reflect","content":"hmm"}`)
	require.NoError(t, err)
	assert.Equal(t, StepKind("reflect"), step.Kind)
	assert.Equal(t, "hmm", step.Content)
}

func TestEncodeOmitsEmptyToolFields(t *testing.T) {
	step := Step{Kind: StepPlan, Content: "thinking"}
	assert.Equal(t, `{"step":"plan","content":"thinking"}`, step.Encode())
}

func TestEncodeIsIdempotent(t *testing.T) {
	step := Step{Kind: StepOutput, Content: "It is sunny."}
	assert.Equal(t, step.Encode(), step.Encode())
}
