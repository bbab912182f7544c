// Package persistence handles YAML serialization of chat sessions
package persistence

import "github.com/mkhalid/smart-assistant/pkg/assistant"

type Session struct {
	Model string `yaml:"model,omitempty"`

	Messages []assistant.Message `yaml:"messages"`
}
