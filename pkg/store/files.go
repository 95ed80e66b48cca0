package store

import "embed"

// Files holds this package's source, shown by the shared-store explainer.
//
//go:embed store.go hooks.go
var Files embed.FS
