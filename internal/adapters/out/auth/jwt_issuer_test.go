package auth_test

import (
	"testing"
	"time"

	"storefront/internal/adapters/out/auth"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test_secret_key_very_long_for_testing"

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	issuer, err := auth.NewJWTIssuer(secret, time.Hour)
	require.NoError(t, err)

	for _, role := range []kernel.Role{kernel.RoleBuyer, kernel.RoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			actor := newActor(t, role)

			token, expiresAt, err := issuer.Issue(actor)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

			parsed, err := issuer.Parse(token)
			require.NoError(t, err)
			assert.True(t, parsed.UserID().IsEqual(actor.UserID()))
			assert.Equal(t, role, parsed.Role())
		})
	}
}

func TestJWTIssuer_RejectsBadTokens(t *testing.T) {
	issuer, err := auth.NewJWTIssuer(secret, time.Hour)
	require.NoError(t, err)
	token, _, err := issuer.Issue(newActor(t, kernel.RoleBuyer))
	require.NoError(t, err)

	other, err := auth.NewJWTIssuer("another_secret_key_very_long", time.Hour)
	require.NoError(t, err)
	expired, err := auth.NewJWTIssuer(secret, time.Nanosecond)
	require.NoError(t, err)
	expiredToken, _, err := expired.Issue(newActor(t, kernel.RoleBuyer))
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": kernel.NewUUID().String(), "role": "admin"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		issuer *auth.JWTIssuer
		token  string
	}{
		{"garbage", issuer, "clearly-not-a-jwt-token-format"},
		{"foreign signature", other, token},
		{"expired", issuer, expiredToken},
		{"alg none", issuer, unsigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.issuer.Parse(tt.token)
			assert.ErrorIs(t, err, ports.ErrTokenInvalid)
		})
	}
}

func TestNewJWTIssuer_Config(t *testing.T) {
	_, err := auth.NewJWTIssuer("", time.Hour)
	assert.Error(t, err)

	_, err = auth.NewJWTIssuer(secret, 0)
	assert.Error(t, err)
}
