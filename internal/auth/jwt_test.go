package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestParse_ValidHS256(t *testing.T) {
	token, err := Issue(secret, "u1", Claims{Role: domain.RoleAdmin, Email: "admin@petshop.test"}, time.Hour)
	require.NoError(t, err)

	claims, err := Parse(secret, token)

	require.NoError(t, err)
	p := claims.Principal()
	assert.Equal(t, "u1", p.Subject)
	assert.Equal(t, domain.RoleAdmin, p.Role)
	assert.Equal(t, "admin@petshop.test", p.Email)
}

func TestParse_Rejects(t *testing.T) {
	now := time.Now()
	sign := func(method jwt.SigningMethod, key []byte, claims Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{
		Subject:   "u1",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	tests := []struct {
		name  string
		token string
	}{
		{"other algorithm", sign(jwt.SigningMethodHS384, secret, Claims{Role: domain.RoleAdmin, RegisteredClaims: valid})},
		{"wrong secret", sign(jwt.SigningMethodHS256, []byte("other"), Claims{Role: domain.RoleAdmin, RegisteredClaims: valid})},
		{"expired", sign(jwt.SigningMethodHS256, secret, Claims{Role: domain.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		}})},
		{"no expiry", sign(jwt.SigningMethodHS256, secret, Claims{Role: domain.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}})},
		{"no subject", sign(jwt.SigningMethodHS256, secret, Claims{Role: domain.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}})},
		{"garbage", "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(secret, tt.token)
			assert.Error(t, err)
		})
	}
}

func TestPrincipalFromContext(t *testing.T) {
	assert.Nil(t, PrincipalFromContext(context.Background()))

	p := &domain.Principal{Subject: "u1", Role: domain.RoleStaff}
	assert.Same(t, p, PrincipalFromContext(WithPrincipal(context.Background(), p)))
}
