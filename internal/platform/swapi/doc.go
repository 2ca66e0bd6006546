// Package swapi is an HTTP client for the public Star Wars catalog API.
//
// The client only speaks the wire format. It reports non-2xx answers as
// *StatusError and transport failures as ErrUnavailable, and leaves their
// interpretation to the caller. An empty or null body is not an error: the
// corresponding envelope is nil.
package swapi
