// Package migrations embeds the order ledger schema for goose.
package migrations

import "embed"

// FS holds the *.sql migrations. cmd/api and the integration tests hand it to
// goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
