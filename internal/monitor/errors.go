package monitor

import "breachwatch/pkg/serrors"

// ErrInvalidFormat indicates a monitored-item value that fails the syntactic
// check for its kind. The kind string is the stable status code surfaced to
// API clients.
var ErrInvalidFormat = serrors.NewKind("INVALID_FORMAT") //nolint: gochecknoglobals
