package testdb

import (
	"os"

	"github.com/phrazzld/swapi-gateway/internal/redact"
)

// URL environment variables in order of precedence.
const (
	TestDatabaseURLEnv = "SWAPI_TEST_DATABASE_URL"
	DatabaseURLEnv     = "SWAPI_DATABASE_URL"
)

// GetTestDatabaseURL returns the database URL for integration tests, or ""
// when none is configured.
func GetTestDatabaseURL() string {
	if url := os.Getenv(TestDatabaseURLEnv); url != "" {
		return url
	}
	return os.Getenv(DatabaseURLEnv)
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// maskDatabaseURL hides credentials for log output.
func maskDatabaseURL(url string) string {
	return redact.String(url)
}
