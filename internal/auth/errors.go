package auth

import "breachwatch/pkg/serrors"

// Semantic error kinds for authentication and credential handling. The kind
// strings are the stable status codes surfaced to API clients.
var (
	// ErrMissingToken indicates no bearer token was presented.
	ErrMissingToken = serrors.NewKind("MISSING_TOKEN")
	// ErrMalformedToken indicates the token could not be parsed or its signature is invalid.
	ErrMalformedToken = serrors.NewKind("MALFORMED_TOKEN")
	// ErrTokenExpired indicates the token's embedded expiry has passed.
	ErrTokenExpired = serrors.NewKind("TOKEN_EXPIRED")
	// ErrTokenRevoked indicates the token is on the revocation list.
	ErrTokenRevoked = serrors.NewKind("TOKEN_REVOKED")
	// ErrUnknownUser indicates the token's user no longer exists.
	ErrUnknownUser = serrors.NewKind("UNKNOWN_USER")
	// ErrInvalidCredentials indicates a failed login. It deliberately does not
	// distinguish unknown identifier from wrong secret.
	ErrInvalidCredentials = serrors.NewKind("INVALID_CREDENTIALS")
	// ErrDuplicateIdentifier indicates the registration email is already taken.
	ErrDuplicateIdentifier = serrors.NewKind("DUPLICATE_IDENTIFIER")
)
