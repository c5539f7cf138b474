package monitor

import (
	"strings"

	"breachwatch/pkg/domain"
	"breachwatch/pkg/serrors"
)

// ValidateItem checks a candidate item value against the syntactic rules of
// its kind and returns the normalized value. Validation is deliberately
// shallow; the external breach source is the authority on whether a value is
// actually known. Kinds without a lookup mechanism carry no syntactic rules
// at all: they are stored as given and never scanned.
func ValidateItem(kind domain.ItemKind, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", serrors.With(ErrInvalidFormat, "value must not be empty")
	}

	if kind == domain.ItemKindEmail {
		if !strings.Contains(value, "@") {
			return "", serrors.With(ErrInvalidFormat, "%q is not a valid email address", value)
		}

		return strings.ToLower(value), nil
	}

	return value, nil
}
