// Package store defines the persistence interfaces and errors for user
// accounts, independent of the database that backs them.
package store
