package assistant

import (
	"context"
	"fmt"
)

// ToolLookup resolves an action step's function name to a callable.
type ToolLookup interface {
	Lookup(name string) (func(input string) string, bool)
}

// Notifier receives one notice per step so the surrounding surface (terminal
// or web) can render the loop's progress. Calls happen synchronously in step
// order.
type Notifier interface {
	Plan(content string)
	Observation(content string)
	Answer(content string)
	ParseError(raw string)
	Warning(message string)
}

// Loop drives one conversation against the completion endpoint until the
// model emits an output step or the run fails.
type Loop struct {
	completer Completer
	tools     ToolLookup
	notify    Notifier
}

// NewLoop wires a dialogue loop from its collaborators.
func NewLoop(completer Completer, tools ToolLookup, notify Notifier) *Loop {
	return &Loop{completer: completer, tools: tools, notify: notify}
}

// Run sends the full transcript to the model, dispatches each parsed step and
// repeats until a terminal step is reached. It returns the final answer for
// an output step. A reply that fails to parse is appended verbatim as the
// last assistant message and ends the run with ErrMalformedReply; no retry or
// re-prompting is attempted. Completion transport faults are returned
// unwrapped and abort the run.
func (l *Loop) Run(ctx context.Context, conv *Conversation) (string, error) {
	for {
		reply, err := l.completer.Complete(ctx, conv.Messages())
		if err != nil {
			return "", err
		}

		step, err := ParseStep(reply)
		if err != nil {
			conv.AppendAssistant(reply)
			l.notify.ParseError(reply)
			return "", fmt.Errorf("%w: %v", ErrMalformedReply, err)
		}

		conv.AppendAssistant(step.Encode())

		switch step.Kind {
		case StepPlan:
			l.notify.Plan(step.Content)

		case StepAction:
			fn, ok := l.tools.Lookup(step.Function)
			if !ok {
				l.notify.Warning(fmt.Sprintf("⚠️ Unknown tool: %s", step.Function))
				return "", fmt.Errorf("%w: %s", ErrUnknownTool, step.Function)
			}
			result := fn(step.Input)
			observation := Step{Kind: StepObserve, Content: result}
			conv.AppendAssistant(observation.Encode())
			l.notify.Observation(result)

		case StepOutput:
			l.notify.Answer(step.Content)
			return step.Content, nil

		default:
			// Observe steps are only ever produced by the loop itself, a
			// model reply tagged observe lands here like any other tag.
			l.notify.Warning("⚠️ Unrecognized step.")
			return "", ErrUnrecognizedStep
		}
	}
}
