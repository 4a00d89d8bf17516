package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// DBPath returns the path of the local database file. Everything lives in
// a single on-device file; there is no database server.
func DBPath() string {
	if path := os.Getenv("DB_PATH"); path != "" {
		return path
	}
	return "carllos.db"
}

func ConnectDB() {
	db, err := gorm.Open(sqlite.Open(DBPath()), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}
