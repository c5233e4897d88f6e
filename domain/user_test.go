package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	strongPassword := "fQ9#mazes-Forged-2024"

	t.Run("creates user and verifies password", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "forge_master",
			PlainPassword: strongPassword,
		})
		require.NoError(t, err)
		assert.NotEqual(t, strongPassword, user.PasswordHash)
		assert.True(t, user.VerifyPassword(strongPassword))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("rejects bad usernames", func(t *testing.T) {
		for _, username := range []string{"ab", "has space", "bad!chars", "this_username_is_way_too_long_ok"} {
			_, err := NewUser(UserConfig{ID: uuid.New(), Username: username, PlainPassword: strongPassword})
			assert.Error(t, err, "username %q", username)
		}
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "forge_master", PlainPassword: "password1"})
		assert.Error(t, err)
	})
}
