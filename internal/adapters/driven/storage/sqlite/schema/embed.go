// Package schema embeds the SQL schema for the waypoint store.
package schema

import "embed"

// FS contains the SQL schema files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
