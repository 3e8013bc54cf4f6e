package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/service"
)

type MockVault struct {
	mock.Mock
}

func (m *MockVault) SaveUser(key string, u domain.User) error {
	args := m.Called(key, u)
	return args.Error(0)
}

func (m *MockVault) LoadUser(key string) (domain.User, error) {
	args := m.Called(key)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockVault) DeleteUser(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func emptyVault() *MockVault {
	vault := new(MockVault)
	vault.On("LoadUser", mock.Anything).Return(domain.User{}, domain.ErrNotFound)
	vault.On("SaveUser", mock.Anything, mock.Anything).Return(nil)
	vault.On("DeleteUser", mock.Anything).Return(nil)
	return vault
}

func TestAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("StartsSignedOut", func(t *testing.T) {
		auth := service.NewAuth("sess-1", emptyVault())

		_, err := auth.CurrentUser()

		require.ErrorIs(t, err, domain.ErrNotSignedIn)
	})

	t.Run("LoginInstallsMockProfile", func(t *testing.T) {
		auth := service.NewAuth("sess-1", emptyVault())

		u, err := auth.Login(ctx, "whoever@example.com", "whatever")

		require.NoError(t, err)
		assert.Equal(t, "user1", u.UserID)
		assert.Equal(t, "John Doe", u.Name)
		assert.Len(t, u.Orders, 2)
		assert.Len(t, u.Wishlist, 3)
		assert.Len(t, u.Appointments, 2)

		current, err := auth.CurrentUser()
		require.NoError(t, err)
		assert.Equal(t, u, current)
	})

	t.Run("LoginPersistsUser", func(t *testing.T) {
		vault := new(MockVault)
		vault.On("LoadUser", "sess-1").Return(domain.User{}, domain.ErrNotFound)
		vault.On("SaveUser", "sess-1", mock.MatchedBy(func(u domain.User) bool {
			return u.UserID == "user1"
		})).Return(nil).Once()
		auth := service.NewAuth("sess-1", vault)

		_, err := auth.Login(ctx, "a@b.c", "pw")

		require.NoError(t, err)
		vault.AssertExpectations(t)
	})

	t.Run("RegisterCreatesFreshUser", func(t *testing.T) {
		auth := service.NewAuth("sess-1", emptyVault())

		u, err := auth.Register(ctx, domain.Registration{
			FirstName: "Grace", LastName: "Hopper",
			Email: "grace@example.com", Phone: "555-0101",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, u.UserID)
		assert.NotEqual(t, "user1", u.UserID)
		assert.Equal(t, "Grace Hopper", u.Name)
		assert.Equal(t, "grace@example.com", u.Email)
		assert.Empty(t, u.Orders)
		assert.Empty(t, u.Wishlist)
	})

	t.Run("LogoutClearsSessionAndVault", func(t *testing.T) {
		vault := new(MockVault)
		vault.On("LoadUser", "sess-1").Return(domain.User{}, domain.ErrNotFound)
		vault.On("SaveUser", mock.Anything, mock.Anything).Return(nil)
		vault.On("DeleteUser", "sess-1").Return(nil).Once()
		auth := service.NewAuth("sess-1", vault)
		_, err := auth.Login(ctx, "a@b.c", "pw")
		require.NoError(t, err)

		require.NoError(t, auth.Logout(ctx))

		_, err = auth.CurrentUser()
		require.ErrorIs(t, err, domain.ErrNotSignedIn)
		vault.AssertExpectations(t)
	})

	t.Run("RehydratesPersistedUser", func(t *testing.T) {
		vault := new(MockVault)
		vault.On("LoadUser", "sess-1").
			Return(domain.User{UserID: "user1", Name: "John Doe"}, nil)

		auth := service.NewAuth("sess-1", vault)

		u, err := auth.CurrentUser()
		require.NoError(t, err)
		assert.Equal(t, "John Doe", u.Name)
	})

	t.Run("CorruptRecordLeavesSignedOut", func(t *testing.T) {
		vault := new(MockVault)
		vault.On("LoadUser", "sess-1").
			Return(domain.User{}, errors.New("unexpected end of JSON input"))

		auth := service.NewAuth("sess-1", vault)

		_, err := auth.CurrentUser()
		require.ErrorIs(t, err, domain.ErrNotSignedIn)
	})

	t.Run("VaultWriteFailureDoesNotFailLogin", func(t *testing.T) {
		vault := new(MockVault)
		vault.On("LoadUser", "sess-1").Return(domain.User{}, domain.ErrNotFound)
		vault.On("SaveUser", mock.Anything, mock.Anything).Return(errors.New("disk full"))
		auth := service.NewAuth("sess-1", vault)

		u, err := auth.Login(ctx, "a@b.c", "pw")

		require.NoError(t, err)
		assert.Equal(t, "user1", u.UserID)
	})
}
