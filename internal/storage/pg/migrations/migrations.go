// Package migrations holds the embedded schema migrations goose applies
// at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
