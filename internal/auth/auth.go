package auth

import (
	"context"
	"errors"
	"strings"

	"breachwatch/pkg/domain"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/serrors"
	"breachwatch/pkg/storage"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	storage storage.Storage
	tokens  *TokenManager
}

var _ Service = (*service)(nil)

// New creates an auth Service on top of the given storage and token manager.
func New(storage storage.Storage, tokens *TokenManager) Service {
	return &service{
		storage: storage,
		tokens:  tokens,
	}
}

// normalizeEmail canonicalizes an email identifier so that lookups and the
// unique constraint agree on equality.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "email must not be empty")
	}

	if password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not hash password")
	}

	user, err := s.storage.CreateUser(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUser) {
			return nil, serrors.Wrap(ErrDuplicateIdentifier, err, "email already registered")
		}

		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not store user")
	}

	logger.Info(ctx, "user registered", zap.String("userID", user.ID.String()))

	return user, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.storage.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not load user")
	}

	if user == nil {
		return "", serrors.With(ErrInvalidCredentials, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", serrors.Wrap(ErrInvalidCredentials, err, "invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.storage.IsTokenRevoked(ctx, token)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not check revocation list")
	}

	if revoked {
		return nil, serrors.With(ErrTokenRevoked, "token has been revoked")
	}

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not load user")
	}

	if user == nil {
		return nil, serrors.With(ErrUnknownUser, "token user no longer exists")
	}

	return user, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	// The token must be structurally valid before it is worth revoking, and
	// anonymous callers must not be able to grow the revocation list.
	if _, err := s.Authenticate(ctx, token); err != nil {
		return err
	}

	if err := s.storage.RevokeToken(ctx, token); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not revoke token")
	}

	return nil
}
