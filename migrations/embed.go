// Package migrations embeds the SQL migration files so goose can apply them
// from tests and from server bootstrap without a path on disk.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
