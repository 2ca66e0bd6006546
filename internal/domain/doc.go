// Package domain contains the core entities of the gateway: the resource
// kinds exposed by the upstream catalog, the normalized records and pages
// returned to clients, and the user accounts that authenticate against it.
// It has no dependencies on transport or storage.
package domain
