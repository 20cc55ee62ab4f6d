// Package migrations embeds the SQL schema migrations for the recipes store.
package migrations

import "embed"

// FS holds the embedded migration files.
//
//go:embed *.sql
var FS embed.FS
