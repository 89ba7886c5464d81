package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

// setupTestDB creates a sqlx.DB backed by sqlmock. The "pgx" driver name gives
// named queries the same $n bind style as production.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	db := sqlx.NewDb(mockDB, "pgx")
	t.Cleanup(func() { db.Close() })
	return db, mock
}
