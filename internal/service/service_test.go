package service

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/flexpass/gympass-backend-go/internal/database"
	"github.com/flexpass/gympass-backend-go/internal/models"
	"github.com/flexpass/gympass-backend-go/internal/repository"
)

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

func seedUser(t *testing.T, db *sql.DB, fullName string) *models.User {
	t.Helper()

	u := &models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		FullName:     fullName,
	}
	require.NoError(t, repository.NewUserRepository(db).InsertUser(u))
	return u
}

func seedListing(t *testing.T, db *sql.DB, l *models.Listing) *models.Listing {
	t.Helper()

	if l.Title == "" {
		l.Title = "Test Gym"
	}
	if l.Location == "" {
		l.Location = "Testville, CA"
	}
	require.NoError(t, repository.NewListingRepository(db).InsertListing(l))
	return l
}
