package auth

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Verifier authenticates EdDSA-signed bearer tokens. The token subject
// becomes the caller's identity.
type Verifier struct {
	issuer   string
	audience string
	key      ed25519.PublicKey
	now      func() time.Time
}

var _ port.Authenticator = (*Verifier)(nil)

// NewVerifier builds a Verifier from configuration.
func NewVerifier(cfg configs.Auth) (*Verifier, error) {
	issuer := strings.TrimSpace(cfg.Issuer)
	audience := strings.TrimSpace(cfg.Audience)
	if issuer == "" {
		return nil, errors.New("AUTH_ISSUER is required")
	}
	if audience == "" {
		return nil, errors.New("AUTH_AUDIENCE is required")
	}
	key, err := DecodePublicKey(cfg.PublicKey)
	if err != nil {
		return nil, err
	}
	return &Verifier{issuer: issuer, audience: audience, key: key, now: time.Now}, nil
}

// Authenticate validates token and returns the identity it was issued to.
// Any failure is reported as domain.ErrUnauthenticated.
func (v *Verifier) Authenticate(_ context.Context, token string) (domain.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.New(domain.CodeUnauthenticated, "bearer token is required")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return "", mapJWTError(err)
	}

	if claims.Issuer != v.issuer {
		return "", domain.New(domain.CodeUnauthenticated, "token issuer mismatch")
	}
	if !slices.Contains(claims.Audience, v.audience) {
		return "", domain.New(domain.CodeUnauthenticated, "token audience mismatch")
	}
	if claims.ExpiresAt == nil {
		return "", domain.New(domain.CodeUnauthenticated, "token exp is required")
	}
	now := v.now().UTC()
	if !claims.ExpiresAt.Time.After(now) {
		return "", domain.New(domain.CodeUnauthenticated, "token is expired")
	}
	if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
		return "", domain.New(domain.CodeUnauthenticated, "token not active yet")
	}

	who := domain.Identity(claims.Subject)
	if who.IsZero() {
		return "", domain.New(domain.CodeUnauthenticated, "token subject is required")
	}
	return who, nil
}

// mapJWTError translates jwt library errors to domain errors.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrEd25519Verification) {
		return domain.Wrap(domain.CodeUnauthenticated, "token signature is invalid", err)
	}
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		return domain.Wrap(domain.CodeUnauthenticated, "token alg is invalid", err)
	}
	return domain.Wrap(domain.CodeUnauthenticated, "token is invalid", err)
}

// Signer issues tokens the Verifier with the same issuer, audience and
// matching public key accepts.
type Signer struct {
	issuer   string
	audience string
	key      ed25519.PrivateKey
	now      func() time.Time
}

// NewSigner returns a Signer using key.
func NewSigner(issuer, audience string, key ed25519.PrivateKey) *Signer {
	return &Signer{issuer: issuer, audience: audience, key: key, now: time.Now}
}

// Sign returns a token for who valid for ttl.
func (s *Signer) Sign(who domain.Identity, ttl time.Duration) (string, error) {
	if who.IsZero() {
		return "", errors.New("identity is required")
	}
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   string(who),
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// DecodePublicKey decodes a base64 ed25519 public key, padded or not.
func DecodePublicKey(value string) (ed25519.PublicKey, error) {
	b, err := decodeBase64(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes", ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(b), nil
}

// DecodePrivateKey decodes a base64 ed25519 private key, padded or not.
func DecodePrivateKey(value string) (ed25519.PrivateKey, error) {
	b, err := decodeBase64(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(b) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("private key must be %d bytes", ed25519.PrivateKeySize)
	}
	return ed25519.PrivateKey(b), nil
}

func decodeBase64(value string) ([]byte, error) {
	if value == "" {
		return nil, errors.New("empty base64 value")
	}
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}
