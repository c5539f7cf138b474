package auth

import (
	"errors"
	"time"

	"breachwatch/pkg/domain"
	"breachwatch/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and parses signed session tokens. Tokens are
// self-contained HS256 JWTs carrying the user ID as subject and an absolute
// expiry; nothing is persisted at issuance time. Revocation is layered on top
// by the Service, which is why Parse knows nothing about the revocation list.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager constructs a TokenManager signing with the given HMAC
// secret and issuing tokens valid for ttl.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the fixed validity horizon of issued tokens.
func (t *TokenManager) TTL() time.Duration { return t.ttl }

// Issue produces a signed token embedding the user ID and an expiry of
// now+TTL.
func (t *TokenManager) Issue(userID domain.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not sign token")
	}

	return signed, nil
}

// Parse verifies the token's signature and expiry and returns the embedded
// user ID. It fails with ErrTokenExpired past the embedded expiry and
// ErrMalformedToken for everything else that is wrong with the token itself.
func (t *TokenManager) Parse(token string) (domain.UserID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.UserID{}, serrors.Wrap(ErrTokenExpired, err, "token has expired")
		}

		return domain.UserID{}, serrors.Wrap(ErrMalformedToken, err, "could not parse token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return domain.UserID{}, serrors.With(ErrMalformedToken, "unexpected claims type")
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(ErrMalformedToken, err, "invalid token subject")
	}

	return userID, nil
}
