package handler

import (
	"context"
	"net/http"
	"strings"

	"breachwatch/internal/auth"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/serrors"

	"go.uber.org/zap"
)

// userKey is the private context key under which requireAuth stores the
// authenticated user.
type userKey struct{}

// bearerToken extracts the token from the Authorization header. A bare token
// without the "Bearer" scheme is accepted too.
func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", serrors.With(auth.ErrMissingToken, "authorization token is missing")
	}

	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token), nil
	}

	return header, nil
}

// requireAuth resolves the bearer token to a user and stores it in the request
// context. Token validity covers signature, expiry and the revocation list.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := bearerToken(r)
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		user, err := h.deps.Auth.Authenticate(ctx, token)
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		ctx = context.WithValue(ctx, userKey{}, user)
		ctx = logger.WithFields(ctx, zap.String("userID", user.ID.String()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFromContext returns the user stored by requireAuth. It is nil on routes
// not behind the middleware.
func userFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey{}).(*domain.User)

	return user
}
