package session

import (
	"sync"
	"time"

	"calendar-assistant/internal/model"
)

// DefaultContextTurns is used when ExportForContext gets a non-positive limit.
const DefaultContextTurns = 10

// DefaultMaxTurns bounds a session's history when NewStore gets a
// non-positive cap.
const DefaultMaxTurns = 20

// Message is the reduced {role, content} shape sent to the language model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Store holds bounded per-session conversation history. It is the only
// shared mutable state in the service: one process-wide instance is
// created at startup and injected into the executor. Nothing persists
// across restarts.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	maxTurns int
}

// entry serializes append+trim per session so concurrent requests on the
// same session cannot interleave their turns. Unrelated sessions never
// contend on an entry lock.
type entry struct {
	mu    sync.Mutex
	turns []model.Turn
}

// NewStore creates a session store capping each session at maxTurns.
func NewStore(maxTurns int) *Store {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Store{
		sessions: make(map[string]*entry),
		maxTurns: maxTurns,
	}
}

// Get returns a copy of the session's turns. Unknown keys yield an empty
// history, never an error.
func (s *Store) Get(sessionKey string) []model.Turn {
	e := s.entry(sessionKey)

	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]model.Turn, len(e.turns))
	copy(out, e.turns)
	return out
}

// Append adds one turn with the current timestamp, evicting the oldest
// turns when the session exceeds its cap.
func (s *Store) Append(sessionKey string, role model.Role, content string) {
	e := s.entry(sessionKey)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.append(role, content, s.maxTurns)
}

// AppendExchange records a user turn and the assistant's reply under a
// single lock acquisition, so a concurrent request on the same session
// cannot interleave between the two.
func (s *Store) AppendExchange(sessionKey, userContent, assistantContent string) {
	e := s.entry(sessionKey)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.append(model.RoleUser, userContent, s.maxTurns)
	e.append(model.RoleAssistant, assistantContent, s.maxTurns)
}

// Clear empties the session's history. Idempotent; clearing an unknown
// key is a no-op.
func (s *Store) Clear(sessionKey string) {
	s.mu.RLock()
	e, ok := s.sessions[sessionKey]
	s.mu.RUnlock()
	if !ok {
		return
	}

	e.mu.Lock()
	e.turns = nil
	e.mu.Unlock()
}

// ExportForContext returns the most recent limit turns reduced to
// {role, content}, oldest of the selected window first. This is the
// payload injected into the language model call.
func (s *Store) ExportForContext(sessionKey string, limit int) []Message {
	if limit <= 0 {
		limit = DefaultContextTurns
	}

	e := s.entry(sessionKey)

	e.mu.Lock()
	defer e.mu.Unlock()

	turns := e.turns
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	out := make([]Message, 0, len(turns))
	for _, t := range turns {
		out = append(out, Message{Role: string(t.Role), Content: t.Content})
	}
	return out
}

// entry returns the session's entry, creating it lazily.
func (s *Store) entry(sessionKey string) *entry {
	s.mu.RLock()
	e, ok := s.sessions[sessionKey]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.sessions[sessionKey]; ok {
		return e
	}
	e = &entry{}
	s.sessions[sessionKey] = e
	return e
}

// append is entry-lock-held bookkeeping: add and trim from the front.
func (e *entry) append(role model.Role, content string, maxTurns int) {
	e.turns = append(e.turns, model.Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	if overflow := len(e.turns) - maxTurns; overflow > 0 {
		e.turns = append([]model.Turn(nil), e.turns[overflow:]...)
	}
}
