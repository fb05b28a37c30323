// Package migrations embute os scripts SQL do schema
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
