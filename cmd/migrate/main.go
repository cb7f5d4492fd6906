package main

import (
	"log"
	"os"

	"med-voice-be/internal/model"
	"med-voice-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// The migration target schema may not exist yet, so connect without a
	// search_path override first.
	poolCfg := database.DefaultPoolConfig()
	bootstrapCfg := poolCfg
	bootstrapCfg.Schema = "public"

	db, err := database.NewGormDBFromDSN(dsn, bootstrapCfg)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 2. Pre-Migration: schema and extensions GORM AutoMigrate doesn't handle
	log.Println("Step 1: Setting up Schema and Extensions...")

	setupSQL := []string{
		`CREATE SCHEMA IF NOT EXISTS ai_chat;`,
		// gen_random_uuid() for primary key defaults
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 3. Reconnect against the target schema and AutoMigrate
	db, err = database.NewGormDBFromDSN(dsn, poolCfg)
	if err != nil {
		log.Fatal("Error: Failed to reconnect with search_path:", err)
	}

	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.ChatRoom{},
		&model.ChatMessage{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
