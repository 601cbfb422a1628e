// Package migrations embeds the SQL schema applied by goose on start-up.
package migrations

import "embed"

// FS holds the goose migration files.
//
//go:embed *.sql
var FS embed.FS
