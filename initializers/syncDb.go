package initializers

import (
	"github.com/Kariqs/hanythrift-api/models"
	"gorm.io/gorm"
)

// SyncDatabase creates or alters tables from the gorm models. Production
// schemas are owned by the SQL migrations; this is for local development and
// tests.
func SyncDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
