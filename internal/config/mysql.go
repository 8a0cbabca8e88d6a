package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// OpenDB connects to MySQL. TranslateError is on so unique-key violations
// surface as gorm.ErrDuplicatedKey for the repositories.
func OpenDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	Logger.Info("database connected")
	return db, nil
}
