package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

// newTestDB returns a PostgreSQL-flavoured DB backed by sqlmock.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func float(v float64) *float64 {
	return &v
}
