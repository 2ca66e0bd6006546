// Package api handles incoming HTTP requests, request validation and
// response formatting. It translates HTTP concerns into calls on the auth
// and catalog services and maps their errors to status codes.
package api
