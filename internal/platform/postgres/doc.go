// Package postgres provides the PostgreSQL implementation of the store
// interfaces, the mapping from driver errors to store errors, and the
// embedded schema migrations.
package postgres
