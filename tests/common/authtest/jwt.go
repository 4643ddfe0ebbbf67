//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the external identity service does; the API
// itself only validates them.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, userID, string(role), time.Now().Add(time.Hour))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, userID, string(role), time.Now().Add(-time.Minute))
}

// TokenWithRole allows roles the API does not know, to exercise rejection.
func (h *JWTHelper) TokenWithRole(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	return h.sign(t, userID, role, time.Now().Add(time.Hour))
}

func (h *JWTHelper) sign(t *testing.T, userID uuid.UUID, role string, expiresAt time.Time) string {
	claims := &jwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-2 * time.Minute)),
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}
