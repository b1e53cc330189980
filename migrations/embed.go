package migrations

import "embed"

// Files holds forward-only SQL migrations compiled into the binary.
//
//go:embed *.sql
var Files embed.FS
