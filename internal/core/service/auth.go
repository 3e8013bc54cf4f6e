package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

var _ port.AuthStore = (*Auth)(nil)

// An Auth holds the optional current user for one session and keeps
// the persisted record in the vault in sync. Credentials are not
// verified, sign-in is simulated.
type Auth struct {
	mu         sync.Mutex
	storageKey string
	vault      port.UserVault
	user       *domain.User
}

// NewAuth rehydrates the session user from the vault. A missing
// record leaves the session signed out; a corrupt one is logged and
// swallowed, never surfaced to the caller.
func NewAuth(storageKey string, vault port.UserVault) *Auth {
	const op = "NewAuth"

	a := &Auth{storageKey: storageKey, vault: vault}

	u, err := vault.LoadUser(storageKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("failed to rehydrate user", "op", op, "err", err)
		}
		return a
	}
	a.user = &u
	return a
}

// Login ignores the credentials and installs the fixed mock profile.
func (a *Auth) Login(_ context.Context, _, _ string) (domain.User, error) {
	u := mockUser()
	a.setUser(u)
	return u, nil
}

// Register creates a fresh user with empty collections.
func (a *Auth) Register(_ context.Context, r domain.Registration) (domain.User, error) {
	u := domain.User{
		UserID:    uuid.NewString(),
		Name:      r.FirstName + " " + r.LastName,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
	a.setUser(u)
	return u, nil
}

func (a *Auth) Logout(_ context.Context) error {
	const op = "Auth.Logout"

	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()

	if err := a.vault.DeleteUser(a.storageKey); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (a *Auth) CurrentUser() (domain.User, error) {
	const op = "Auth.CurrentUser"

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.user == nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrNotSignedIn)
	}
	return *a.user, nil
}

func (a *Auth) setUser(u domain.User) {
	const op = "Auth.setUser"

	a.mu.Lock()
	a.user = &u
	a.mu.Unlock()

	// the persisted copy is best effort, sign-in itself cannot fail
	if err := a.vault.SaveUser(a.storageKey, u); err != nil {
		slog.Error("failed to persist user", "op", op, "err", err)
	}
}
