// Package openapi holds the embedded API description of the UI and the page that renders it.
package openapi

import _ "embed"

// YAML is the OpenAPI document for the UI routes and the upstream product schema.
//
//go:embed openapi.yaml
var YAML []byte

// DocsHTML loads swagger-ui from a CDN and points it at the YAML above.
//
//go:embed docs.html
var DocsHTML []byte
