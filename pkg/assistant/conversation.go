package assistant

// Message is one role-tagged entry of the transcript sent to the completion
// endpoint. Messages are immutable once appended.
type Message struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation is the ordered, append-only transcript of one user session.
// It grows monotonically until the session ends; it is never truncated or
// summarized, so every completion call observes the full history.
type Conversation struct {
	msgs []Message
}

// NewConversation starts a transcript with the tool-aware system prompt as
// its first message.
func NewConversation(systemPrompt string) *Conversation {
	return &Conversation{
		msgs: []Message{{Role: RoleSystem, Content: systemPrompt}},
	}
}

// ResumeConversation rebuilds a transcript from previously saved messages.
func ResumeConversation(msgs []Message) *Conversation {
	return &Conversation{msgs: msgs}
}

// Append adds a message at the end of the transcript.
func (c *Conversation) Append(msg Message) {
	c.msgs = append(c.msgs, msg)
}

// AppendUser adds a user query to the transcript.
func (c *Conversation) AppendUser(content string) {
	c.Append(Message{Role: RoleUser, Content: content})
}

// AppendAssistant adds an assistant reply to the transcript.
func (c *Conversation) AppendAssistant(content string) {
	c.Append(Message{Role: RoleAssistant, Content: content})
}

// Messages returns the full ordered transcript. The slice is shared with the
// conversation, callers must not modify it.
func (c *Conversation) Messages() []Message {
	return c.msgs
}

// Len reports the number of messages in the transcript.
func (c *Conversation) Len() int {
	return len(c.msgs)
}
