// Package migration holds the versioned schema of every supported dialect.
package migration

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
