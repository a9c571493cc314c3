package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"socialclient/config"
	"socialclient/models"
)

var ORM *gorm.DB

// Open открывает локальное хранилище клиента (файл sqlite) и накатывает миграции
func Open(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is empty")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.SessionRecord{}); err != nil {
		return nil, err
	}

	return db, nil
}

func ConnectDB() (err error) {
	if ORM != nil {
		log.Println("ORM is already initialized")
		return nil
	}

	if config.AppConfig.Storage.Path == "" {
		return fmt.Errorf("storage configuration is missing")
	}

	ORM, err = Open(config.AppConfig.Storage.Path)
	return err
}
