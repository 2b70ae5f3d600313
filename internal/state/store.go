package state

import (
	"sync"

	"github.com/rs/zerolog"

	"vandar/client/internal/api"
	"vandar/client/internal/credentials"
)

// Store holds the whole client-side application state behind one mutex:
// the session, the post collections and the ephemeral UI state. Mutations
// go through typed methods; subscribers are notified after every change.
// When operations overlap, the last one to settle wins.
type Store struct {
	mu      sync.Mutex
	session SessionState
	content ContentState
	ui      UIState

	auth  *api.AuthService
	posts *api.PostService
	creds *credentials.Store
	log   zerolog.Logger

	nextSub     int
	subscribers map[int]func()
}

func NewStore(auth *api.AuthService, posts *api.PostService, creds *credentials.Store, logger zerolog.Logger) *Store {
	return &Store{
		session: SessionState{},
		content: ContentState{CurrentPage: 1},
		ui:      UIState{Theme: ThemeLight},

		auth:  auth,
		posts: posts,
		creds: creds,
		log:   logger,

		subscribers: make(map[int]func()),
	}
}

func (s *Store) Session() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Store) Content() ContentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

func (s *Store) UI() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ui
}

// Subscribe registers fn to run after every state change and returns the
// matching unsubscribe.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// update applies fn under the lock, then notifies subscribers outside it so
// they can read snapshots without deadlocking.
func (s *Store) update(fn func()) {
	s.mu.Lock()
	fn()
	subs := make([]func(), 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub()
	}
}
