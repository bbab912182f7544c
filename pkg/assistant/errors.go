package assistant

import "errors"

var (
	// ErrMalformedReply is returned when the model reply is not valid JSON
	// for the Step shape. The raw reply is kept as the last assistant
	// message so the failure stays visible to the user.
	ErrMalformedReply = errors.New("model reply was not in the expected JSON format")

	// ErrUnknownTool is returned when an action step names a tool that is
	// not in the registry.
	ErrUnknownTool = errors.New("unknown tool requested by model")

	// ErrUnrecognizedStep is returned when the step tag is none of plan,
	// action or output.
	ErrUnrecognizedStep = errors.New("unrecognized step in model reply")

	// ErrNoChoices is returned when the completion response carries no
	// choices.
	ErrNoChoices = errors.New("no choices in completion response")
)
