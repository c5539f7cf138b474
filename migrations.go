// Package breachwatch holds module-level assets shared by the CLI commands.
package breachwatch

import "embed"

// Migrations contains the embedded goose SQL migrations applied by the
// migrate subcommand.
//
//go:embed migrations/*.sql
var Migrations embed.FS
