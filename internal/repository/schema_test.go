package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTableBody extracts the CREATE TABLE statement for a table from a
// migration file, so tests can check that every column the repositories
// read and write is actually declared there.
func createTableBody(t *testing.T, file, table string) string {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "..", "migrations", file))
	require.NoError(t, err)

	sql := string(raw)
	start := strings.Index(sql, "CREATE TABLE "+table)
	require.GreaterOrEqual(t, start, 0, "missing CREATE TABLE %s in %s", table, file)
	end := strings.Index(sql[start:], ";")
	require.Greater(t, end, 0)

	return sql[start : start+end]
}

func TestBookingsTableDeclaresRepositoryColumns(t *testing.T) {
	body := createTableBody(t, "00004_create_bookings.sql", "bookings")

	for _, col := range strings.Split(bookingColumns, ",") {
		assert.Contains(t, body, strings.TrimSpace(col))
	}
}

func TestRoomsTableDeclaresRepositoryColumns(t *testing.T) {
	body := createTableBody(t, "00002_create_rooms.sql", "rooms")

	cols := []string{"id", "tenant_id", "name", "base_price", "capacity", "created_at", "updated_at"}
	for _, col := range cols {
		assert.Contains(t, body, col)
	}
}
