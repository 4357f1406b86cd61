package main

import (
	"log"

	"blogapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func initDB(cfg Config) *gorm.DB {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Migrate models individually so a failure on one doesn't block others
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Printf("migration warning (users): %v", err)
	}
	if err := db.AutoMigrate(&models.Blog{}); err != nil {
		log.Printf("migration warning (blogs): %v", err)
	}
	return db
}
