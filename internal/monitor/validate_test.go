package monitor_test

import (
	"errors"
	"testing"

	"breachwatch/internal/monitor"
	"breachwatch/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestValidateItem_Email(t *testing.T) {
	value, err := monitor.ValidateItem(domain.ItemKindEmail, "  Alice@Example.COM ")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", value)
}

func TestValidateItem_UnscannableKinds(t *testing.T) {
	// Kinds without a lookup mechanism are accepted verbatim (minus
	// surrounding whitespace); email normalization must not apply.
	cases := []struct {
		name  string
		kind  domain.ItemKind
		value string
		want  string
	}{
		{"password", domain.ItemKind("password"), " hunter2 ", "hunter2"},
		{"credit card", domain.ItemKind("credit_card"), "4111111111111111", "4111111111111111"},
		{"case preserved", domain.ItemKind("username"), "AliceB", "AliceB"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := monitor.ValidateItem(tc.kind, tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.want, value)
		})
	}
}

func TestValidateItem_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		kind  domain.ItemKind
		value string
	}{
		{"empty", domain.ItemKindEmail, "   "},
		{"empty unscannable kind", domain.ItemKind("password"), "   "},
		{"no at sign", domain.ItemKindEmail, "not-an-email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := monitor.ValidateItem(tc.kind, tc.value)
			require.Error(t, err)
			require.True(t, errors.Is(err, monitor.ErrInvalidFormat))
		})
	}
}

func TestValidateItem_ErrorMessageKeepsVerbs(t *testing.T) {
	// A value containing formatting verbs must survive into the message
	// untouched.
	_, err := monitor.ValidateItem(domain.ItemKindEmail, "100%x")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"100%x"`)
}
