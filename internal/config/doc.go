// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file and SWAPI_-prefixed environment
// variables. It provides type-safe access to the settings needed by the
// HTTP server, the user database, token issuance, the upstream client and
// the catalog layer.
package config
