// Package web serves the browser chat surface on top of the dialogue loop.
package web

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkhalid/smart-assistant/pkg/assistant"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query" binding:"required"`
}

// StepNotice is one rendered step of a loop run.
type StepNotice struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

type chatResponse struct {
	SessionID string       `json:"session_id"`
	Steps     []StepNotice `json:"steps"`
	Answer    string       `json:"answer,omitempty"`
}

// Server owns the per-session conversations and runs one dialogue loop per
// chat request. Sessions live in memory for the lifetime of the process.
type Server struct {
	engine       *gin.Engine
	completer    assistant.Completer
	tools        assistant.ToolLookup
	systemPrompt string

	mu       sync.Mutex
	sessions map[string]*chatSession
}

// chatSession serializes loop executions against one conversation.
type chatSession struct {
	mu   sync.Mutex
	conv *assistant.Conversation
}

// NewServer wires the chat routes.
func NewServer(completer assistant.Completer, tools assistant.ToolLookup, systemPrompt string) *Server {
	s := &Server{
		engine:       gin.Default(),
		completer:    completer,
		tools:        tools,
		systemPrompt: systemPrompt,
		sessions:     make(map[string]*chatSession),
	}

	s.engine.GET("/", s.index)
	s.engine.POST("/api/chat", s.chat)

	return s
}

// Run blocks serving the chat surface on addr.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the underlying router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(chatPage))
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat payload"})
		return
	}

	id, sess := s.session(req.SessionID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.conv.AppendUser(req.Query)

	collector := &collector{}
	loop := assistant.NewLoop(s.completer, s.tools, collector)
	answer, err := loop.Run(c.Request.Context(), sess.conv)
	if err != nil && !isTerminalNotice(err) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Completion request failed"})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		SessionID: id,
		Steps:     collector.steps,
		Answer:    answer,
	})
}

// session returns the session for id, allocating a fresh conversation when
// the id is empty or unknown.
func (s *Server) session(id string) (string, *chatSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			return id, sess
		}
	}

	id = uuid.NewString()
	sess := &chatSession{conv: assistant.NewConversation(s.systemPrompt)}
	s.sessions[id] = sess
	return id, sess
}

// isTerminalNotice reports whether the loop already surfaced the failure as
// a step notice. Those runs still answer 200, only completion transport
// faults become an HTTP error.
func isTerminalNotice(err error) bool {
	return errors.Is(err, assistant.ErrMalformedReply) ||
		errors.Is(err, assistant.ErrUnknownTool) ||
		errors.Is(err, assistant.ErrUnrecognizedStep)
}

// collector gathers step notices for one chat response.
type collector struct {
	steps []StepNotice
}

func (c *collector) Plan(content string) {
	c.steps = append(c.steps, StepNotice{Kind: "plan", Content: content})
}

func (c *collector) Observation(content string) {
	c.steps = append(c.steps, StepNotice{Kind: "observation", Content: content})
}

func (c *collector) Answer(content string) {
	c.steps = append(c.steps, StepNotice{Kind: "answer", Content: content})
}

func (c *collector) ParseError(raw string) {
	c.steps = append(c.steps, StepNotice{Kind: "parse-error", Content: raw})
}

func (c *collector) Warning(message string) {
	c.steps = append(c.steps, StepNotice{Kind: "warning", Content: message})
}
