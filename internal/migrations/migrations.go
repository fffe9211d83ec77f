// Package migrations embeds the versioned schema files. Applied in
// lexicographic order, tracked in schema_migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
