package database

import (
	"fmt"
	"testing"

	"github.com/borovikovd/realworld-backend-go/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an in-memory SQLite database scoped to the test. The shared
// cache keeps every pooled connection pointed at the same database.
func testDB(t *testing.T) Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	return New(db)
}

func mustUser(t *testing.T, d Database, email, username string) *models.User {
	t.Helper()

	user, err := models.NewUser(email, username, "hash")
	require.NoError(t, err)
	require.NoError(t, d.UserRepo().Create(user))
	return user
}

func fixedToken() string { return "deadbeef" }
