// Package dbtest opens throwaway SQLite databases with the application schema
// for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/Kariqs/hanythrift-api/initializers"
	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const Password = "secret-password"

// Open returns a migrated database backed by a file in t.TempDir().
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "hanythrift.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, initializers.SyncDatabase(db))
	return db
}

// CreateUser inserts an active user whose password is Password.
func CreateUser(t testing.TB, db *gorm.DB, email string, seller bool) models.User {
	t.Helper()

	hash, err := services.HashPassword(Password)
	require.NoError(t, err)

	user := models.User{Email: email, Name: email, HashedPassword: hash, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	if seller {
		require.NoError(t, db.Model(&user).Update("is_seller", true).Error)
		user.IsSeller = true
	}
	return user
}

func Deactivate(t testing.TB, db *gorm.DB, user *models.User) {
	t.Helper()
	require.NoError(t, db.Model(user).Update("is_active", false).Error)
	user.IsActive = false
}

func CreateProduct(t testing.TB, db *gorm.DB, sellerID uint, name, price string) models.Product {
	t.Helper()

	product := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Category:    "Clothing",
		Stock:       5,
		SellerID:    sellerID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
