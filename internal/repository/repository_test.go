package repository

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/flexpass/gympass-backend-go/internal/database"
	"github.com/flexpass/gympass-backend-go/internal/models"
)

// newTestDB opens a throwaway database with the real schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return db
}

func insertTestUser(t *testing.T, db *sql.DB) *models.User {
	t.Helper()

	u := &models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		FullName:     "Test User",
	}
	require.NoError(t, NewUserRepository(db).InsertUser(u))
	return u
}

func insertTestListing(t *testing.T, db *sql.DB, l *models.Listing) *models.Listing {
	t.Helper()

	if l == nil {
		l = &models.Listing{}
	}
	if l.Title == "" {
		l.Title = "Test Gym"
	}
	if l.Location == "" {
		l.Location = "Testville, CA"
	}
	require.NoError(t, NewListingRepository(db).InsertListing(l))
	return l
}
