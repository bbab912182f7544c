package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalid/smart-assistant/pkg/assistant"
)

func TestSaveAndResumeSession(t *testing.T) {
	sessionFile := filepath.Join(t.TempDir(), "session.yaml")

	conv := assistant.NewConversation("system prompt")
	conv.AppendUser("What's the weather in Lahore?")
	conv.AppendAssistant(`{"step":"output","content":"Sunny."}`)

	require.NoError(t, SaveSession(sessionFile, "gpt-4o", conv))

	resumed, model, err := TryToResumeSession(sessionFile)
	require.NoError(t, err)
	require.NotNil(t, resumed)

	assert.Equal(t, "gpt-4o", model)
	assert.Equal(t, conv.Messages(), resumed.Messages())
}

func TestTryToResumeSessionMissingFile(t *testing.T) {
	conv, model, err := TryToResumeSession(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, conv)
	assert.Empty(t, model)
}
