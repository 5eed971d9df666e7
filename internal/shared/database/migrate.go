package database

import (
	"marketplace/internal/items"
	"marketplace/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&items.Item{},
	)
}
