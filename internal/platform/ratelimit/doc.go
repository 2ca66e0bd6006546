// Package ratelimit limits sign-in attempts per client key. A Redis
// fixed-window store shares counts across instances; without Redis an
// in-process token bucket per key is used.
package ratelimit
