package assistant

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// The sampling temperature is fixed, the step protocol leaves no knob for it.
const defaultTemperature = 0.5

// Completer produces one reply text for the full ordered transcript.
type Completer interface {
	Complete(ctx context.Context, msgs []Message) (string, error)
}

// OpenAICompleter calls an OpenAI-compatible chat completions endpoint
// without streaming. Transport and auth faults are returned as-is and abort
// the surrounding dialogue loop.
type OpenAICompleter struct {
	client openai.Client
	model  string
}

// NewOpenAICompleter wraps the given client with a fixed model identifier.
func NewOpenAICompleter(client openai.Client, model string) *OpenAICompleter {
	return &OpenAICompleter{client: client, model: model}
}

func (o *OpenAICompleter) Complete(ctx context.Context, msgs []Message) (string, error) {
	param := openai.ChatCompletionNewParams{
		Model:       o.model,
		Temperature: openai.Float(defaultTemperature),
		Messages:    newParamMessages(msgs),
	}

	completion, err := o.client.Chat.Completions.New(ctx, param)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrNoChoices
	}
	return completion.Choices[0].Message.Content, nil
}

func newParamMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	var paramMessages []openai.ChatCompletionMessageParamUnion
	for _, msg := range msgs {
		switch msg.Role {
		case RoleSystem:
			paramMessages = append(paramMessages, openai.SystemMessage(msg.Content))
		case RoleUser:
			paramMessages = append(paramMessages, openai.UserMessage(msg.Content))
		case RoleAssistant:
			paramMessages = append(paramMessages, openai.AssistantMessage(msg.Content))
		}
	}
	return paramMessages
}
