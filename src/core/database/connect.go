package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/wolf6905/CCG3/src/core/config"
	"github.com/wolf6905/CCG3/src/core/models"
)

// ConnectDB opens the Postgres connection and migrates the user table.
func ConnectDB(cfg *config.Config) *gorm.DB {
	// Build the connection string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		// Surface unique-constraint violations as gorm.ErrDuplicatedKey
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Error migrating the database schema: %v", err)
	}

	fmt.Println("Database successfully connected!")
	return db
}
