package service

import (
	"sync"

	"github.com/chronolux/storefront/internal/core/port"
)

var _ port.SessionProvider = (*SessionRegistry)(nil)
var _ port.Session = (*Session)(nil)

// A Session bundles the stores constructed once per client session.
type Session struct {
	cart     *Cart
	checkout *Checkout
	auth     *Auth
}

func (s *Session) Cart() port.CartStore { return s.cart }
func (s *Session) Checkout() port.CheckoutFlow { return s.checkout }
func (s *Session) Auth() port.AuthStore { return s.auth }

// A SessionRegistry creates and hands out sessions by id. Stores are
// explicit per-session instances, no ambient globals.
type SessionRegistry struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	vault     port.UserVault
	submitter port.OrderSubmitter
	archiver  port.OrderArchiver
	events    port.EventsProducer
}

func NewSessionRegistry(
	vault port.UserVault,
	submitter port.OrderSubmitter,
	archiver port.OrderArchiver,
	events port.EventsProducer,
) *SessionRegistry {
	return &SessionRegistry{
		sessions:  make(map[string]*Session),
		vault:     vault,
		submitter: submitter,
		archiver:  archiver,
		events:    events,
	}
}

func (r *SessionRegistry) Session(sessionID string) port.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[sessionID]; ok {
		return s
	}

	cart := NewCart()
	s := &Session{
		cart:     cart,
		checkout: NewCheckout(sessionID, cart, r.submitter, r.archiver, r.events),
		auth:     NewAuth(sessionID, r.vault),
	}
	r.sessions[sessionID] = s
	return s
}
