// Package migrations embeds the SQL schema migrations applied at
// server startup via golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
