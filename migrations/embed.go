// Package migrations embeds the SQL schema for the content catalog.
package migrations

import "embed"

//go:embed *.up.sql
var Files embed.FS
