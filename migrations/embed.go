// Package migrations embeds the SQL migration files so they can be used
// by the goose provider API in tests and by the migrate command.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
