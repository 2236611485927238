package services

import (
	"testing"

	"luxelane/models"

	"github.com/stretchr/testify/assert"
)

func TestUserStore(t *testing.T) {
	store := NewUserStore()

	t.Run("Initial State Is Unauthenticated", func(t *testing.T) {
		state := store.State()
		assert.False(t, state.IsAuthenticated)
		assert.Nil(t, state.User)
	})

	t.Run("Login Stores The User", func(t *testing.T) {
		state := store.Login(models.User{Name: "jane", Email: "jane@example.com"})
		assert.True(t, state.IsAuthenticated)
		assert.Equal(t, "jane", state.User.Name)
		assert.Equal(t, "jane@example.com", state.User.Email)
	})

	t.Run("Logout Restores The Exact Initial State", func(t *testing.T) {
		store.Login(models.User{Name: "jane", Email: "jane@example.com"})
		state := store.Logout()
		assert.Equal(t, models.UserState{}, state, "no residual user data")
	})
}

func TestMockAuthenticator(t *testing.T) {
	auth := NewMockAuthenticator()

	t.Run("Accepts Any Non-Empty Pair", func(t *testing.T) {
		user, err := auth.Authenticate("jane.doe@example.com", "hunter2")
		assert.NoError(t, err)
		assert.Equal(t, "jane.doe", user.Name, "name is the email local part")
		assert.Equal(t, "jane.doe@example.com", user.Email)
	})

	t.Run("Rejects Empty Email", func(t *testing.T) {
		_, err := auth.Authenticate("", "hunter2")
		assert.ErrorIs(t, err, ErrEmptyCredentials)
	})

	t.Run("Rejects Empty Password", func(t *testing.T) {
		_, err := auth.Authenticate("jane@example.com", "")
		assert.ErrorIs(t, err, ErrEmptyCredentials)
	})

	t.Run("Email Without At Sign Keeps Whole String As Name", func(t *testing.T) {
		user, err := auth.Authenticate("jane", "pw")
		assert.NoError(t, err)
		assert.Equal(t, "jane", user.Name)
	})
}
