// Package auth issues and validates HS256 access tokens and implements the
// sign-up and sign-in flows on top of the user store.
package auth
