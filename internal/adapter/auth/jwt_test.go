package auth

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
)

const (
	testIssuer   = "crowdfund-test"
	testAudience = "crowdfund-api"
)

func newKeys(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub, priv
}

func newVerifier(t *testing.T, pub ed25519.PublicKey) *Verifier {
	t.Helper()
	v, err := NewVerifier(configs.Auth{
		Issuer:    testIssuer,
		Audience:  testAudience,
		PublicKey: base64.RawStdEncoding.EncodeToString(pub),
	})
	require.NoError(t, err)
	return v
}

func TestAuthenticate(t *testing.T) {
	pub, priv := newKeys(t)
	v := newVerifier(t, pub)

	token, err := NewSigner(testIssuer, testAudience, priv).Sign("alice", time.Minute)
	require.NoError(t, err)

	who, err := v.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("alice"), who)
}

func TestAuthenticate_Rejects(t *testing.T) {
	pub, priv := newKeys(t)
	_, otherPriv := newKeys(t)
	v := newVerifier(t, pub)

	expired := NewSigner(testIssuer, testAudience, priv)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }

	sign := func(s *Signer) string {
		token, err := s.Sign("alice", time.Minute)
		require.NoError(t, err)
		return token
	}
	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "alice",
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(priv)
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwt.RegisteredClaims{
		Issuer:   testIssuer,
		Subject:  "alice",
		Audience: jwt.ClaimStrings{testAudience},
	}).SignedString(priv)
	require.NoError(t, err)

	tests := map[string]string{
		"empty":           "  ",
		"garbage":         "not-a-token",
		"wrong key":       sign(NewSigner(testIssuer, testAudience, otherPriv)),
		"wrong issuer":    sign(NewSigner("someone-else", testAudience, priv)),
		"wrong audience":  sign(NewSigner(testIssuer, "other-api", priv)),
		"expired":         sign(expired),
		"hmac algorithm":  hs256,
		"missing subject": noSubject,
		"missing expiry":  noExpiry,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			who, err := v.Authenticate(context.Background(), token)
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
			assert.Empty(t, who)
		})
	}
}

func TestNewVerifier_Config(t *testing.T) {
	pub, _ := newKeys(t)
	padded := base64.StdEncoding.EncodeToString(pub)

	_, err := NewVerifier(configs.Auth{Issuer: "i", Audience: "a", PublicKey: padded})
	assert.NoError(t, err)

	_, err = NewVerifier(configs.Auth{Audience: "a", PublicKey: padded})
	assert.Error(t, err)
	_, err = NewVerifier(configs.Auth{Issuer: "i", PublicKey: padded})
	assert.Error(t, err)
	_, err = NewVerifier(configs.Auth{Issuer: "i", Audience: "a"})
	assert.Error(t, err)
	_, err = NewVerifier(configs.Auth{Issuer: "i", Audience: "a", PublicKey: base64.StdEncoding.EncodeToString([]byte("short"))})
	assert.Error(t, err)
}

func TestSigner_RequiresIdentity(t *testing.T) {
	_, priv := newKeys(t)
	_, err := NewSigner(testIssuer, testAudience, priv).Sign(" ", time.Minute)
	assert.Error(t, err)
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFrom(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), "bob")
	who, ok := IdentityFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.Identity("bob"), who)

	_, ok = IdentityFrom(WithIdentity(context.Background(), ""))
	assert.False(t, ok)
}
