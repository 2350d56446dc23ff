// Package api embeds the OpenAPI document of the vignette API. The server
// serves it at /openapi.yaml.
package api

import _ "embed"

// OpenAPI is openapi.yaml, embedded at compile time so the served contract
// ships with the binary that implements it.
//
//go:embed openapi.yaml
var OpenAPI []byte
