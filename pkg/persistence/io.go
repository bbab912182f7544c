package persistence

import (
	"os"

	"github.com/mkhalid/smart-assistant/pkg/assistant"
	"gopkg.in/yaml.v3"
)

func SaveSession(sessionFile, model string, conv *assistant.Conversation) error {
	session := Session{Model: model, Messages: conv.Messages()}
	data, err := yaml.Marshal(&session)
	if err != nil {
		return err
	}
	if err = os.WriteFile(sessionFile, data, 0640); err != nil {
		return err
	}
	return nil
}

// TryToResumeSession restores a conversation from the session file. A missing
// file is not an error, it returns a nil conversation so the caller starts a
// fresh one.
func TryToResumeSession(sessionFile string) (*assistant.Conversation, string, error) {
	_, err := os.Stat(sessionFile)
	if os.IsNotExist(err) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(sessionFile)
	if err != nil {
		return nil, "", err
	}

	var session Session
	if err = yaml.Unmarshal(data, &session); err != nil {
		return nil, "", err
	}
	if len(session.Messages) == 0 {
		return nil, session.Model, nil
	}

	return assistant.ResumeConversation(session.Messages), session.Model, nil
}
