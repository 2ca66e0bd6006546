// Package testdb provides helpers for tests that need a real PostgreSQL
// database.
//
// Integration tests are guarded by the "integration" build tag and skip when
// no database URL is configured:
//
//	//go:build integration
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDB(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			users := postgres.NewPostgresUserStore(tx)
//			...
//		})
//	}
//
// Every WithTx transaction is rolled back, so tests never see each other's
// rows and can run in parallel.
package testdb
