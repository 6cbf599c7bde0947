package users

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/berean/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_users_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func TestRepository_GetUserByID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	created := &entities.User{Username: "reader", Email: "reader@example.com"}
	require.NoError(t, db.Create(created).Error)

	user, err := repo.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "reader", user.Username)

	_, err = repo.GetUserByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetUserByUsername(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Create(&entities.User{Username: "reader", Email: "reader@example.com"}).Error)

	user, err := repo.GetUserByUsername("reader")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", user.Email)

	_, err = repo.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_ListUsers(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Create(&entities.User{Username: "a", Email: "a@example.com"}).Error)
	require.NoError(t, db.Create(&entities.User{Username: "b", Email: "b@example.com"}).Error)

	users, err := repo.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
