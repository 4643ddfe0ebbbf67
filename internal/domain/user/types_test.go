//go:build unit

package user_test

import (
	"testing"

	"marketplace-api/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"user", "business", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	for _, s := range []string{"", "viewer", "ADMIN"} {
		_, err := user.NewRole(s)
		assert.ErrorIs(t, err, user.ErrInvalidRole, s)
	}
}

func TestCallerIsAdmin(t *testing.T) {
	assert.True(t, user.Caller{ID: uuid.New(), Role: user.RoleAdmin}.IsAdmin())
	assert.False(t, user.Caller{ID: uuid.New(), Role: user.RoleBusiness}.IsAdmin())
}
