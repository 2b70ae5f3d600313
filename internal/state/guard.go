package state

import "sync"

type GuardDecision int

const (
	// GuardLoading means an auth operation is still settling; render a
	// loading indicator and do not redirect yet.
	GuardLoading GuardDecision = iota
	// GuardRedirect means the session settled unauthenticated; send the
	// user to the login entry point and render nothing.
	GuardRedirect
	// GuardRender means the guarded content may be shown.
	GuardRender
)

// EvaluateGuard maps a session snapshot to a guard decision.
func EvaluateGuard(session SessionState) GuardDecision {
	if session.IsLoading {
		return GuardLoading
	}
	if !session.IsAuthenticated {
		return GuardRedirect
	}
	return GuardRender
}

// Guard watches the store and fires redirect once per unauthenticated
// settlement. Authenticating again re-arms it, so a later logout while the
// guarded content is shown redirects again.
type Guard struct {
	store    *Store
	redirect func()

	mu         sync.Mutex
	redirected bool
}

func NewGuard(store *Store, redirect func()) *Guard {
	return &Guard{store: store, redirect: redirect}
}

// Watch evaluates immediately and on every subsequent state change; the
// returned func stops watching.
func (g *Guard) Watch() func() {
	g.check()
	return g.store.Subscribe(g.check)
}

func (g *Guard) check() {
	decision := EvaluateGuard(g.store.Session())

	g.mu.Lock()
	fire := false
	switch decision {
	case GuardRedirect:
		if !g.redirected {
			g.redirected = true
			fire = true
		}
	case GuardRender:
		g.redirected = false
	}
	g.mu.Unlock()

	if fire {
		g.redirect()
	}
}
