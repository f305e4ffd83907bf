package data

import (
	"context"
	"errors"
	"leaguedash/pkg/messages"
	"sync"
)

// ErrSuperseded is returned for a search replaced by a newer one of the same client.
var ErrSuperseded = errors.New(messages.SupersededRequest)

type session struct {
	seq    uint64
	cancel context.CancelFunc
}

// SessionRegistry tracks the latest search of every client.
type SessionRegistry struct {
	mu       sync.Mutex
	seq      uint64
	sessions map[string]*session
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*session)}
}

// Search is one search of a client. Its result only applies while it is the latest.
type Search struct {
	ctx      context.Context
	cancel   context.CancelFunc
	registry *SessionRegistry
	clientID string
	seq      uint64
}

// Begin starts a search for clientID and supersedes the previous one, cancelling its context.
// An empty clientID is never superseded.
func (r *SessionRegistry) Begin(parent context.Context, clientID string) *Search {
	ctx, cancel := context.WithCancel(parent)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	search := &Search{ctx: ctx, cancel: cancel, registry: r, clientID: clientID, seq: r.seq}
	if clientID == "" {
		return search
	}

	if previous, ok := r.sessions[clientID]; ok {
		previous.cancel()
	}
	r.sessions[clientID] = &session{seq: search.seq, cancel: cancel}

	return search
}

// Context is cancelled when the search is superseded or ended.
func (s *Search) Context() context.Context {
	return s.ctx
}

// Current reports whether no newer search of the same client began.
func (s *Search) Current() bool {
	if s.clientID == "" {
		return true
	}

	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	current, ok := s.registry.sessions[s.clientID]
	return ok && current.seq == s.seq
}

// End releases the search and cancels its context.
func (s *Search) End() {
	s.cancel()
	if s.clientID == "" {
		return
	}

	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	if current, ok := s.registry.sessions[s.clientID]; ok && current.seq == s.seq {
		delete(s.registry.sessions, s.clientID)
	}
}

// Apply returns the result of a search, or ErrSuperseded when a newer search began meanwhile.
func Apply[T any](s *Search, value T, err error) (T, error) {
	if !s.Current() {
		var zero T
		return zero, ErrSuperseded
	}
	return value, err
}
