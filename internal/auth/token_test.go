package auth_test

import (
	"errors"
	"testing"
	"time"

	"breachwatch/internal/auth"
	"breachwatch/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	userID := domain.UserID(uuid.New())

	token, err := tm.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := tm.Parse(token)
	require.NoError(t, err)
	require.Equal(t, userID, parsed)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	tm := auth.NewTokenManager("secret", -time.Minute)

	token, err := tm.Issue(domain.UserID(uuid.New()))
	require.NoError(t, err)

	_, err = tm.Parse(token)
	require.Error(t, err)
	require.True(t, errors.Is(err, auth.ErrTokenExpired))
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	token, err := auth.NewTokenManager("secret", time.Hour).Issue(domain.UserID(uuid.New()))
	require.NoError(t, err)

	_, err = auth.NewTokenManager("other", time.Hour).Parse(token)
	require.Error(t, err)
	require.True(t, errors.Is(err, auth.ErrMalformedToken))
}

func TestTokenManager_Parse_Garbage(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "aaaa.bbbb.cccc"} {
		_, err := tm.Parse(token)
		require.Error(t, err)
		require.True(t, errors.Is(err, auth.ErrMalformedToken))
	}
}
