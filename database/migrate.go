// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"cyberhunt/models"
)

// RunMigrations runs all database migrations and seeds the built-in data.
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Quiz{},
		&models.GroupProgress{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	if err := SeedGameData(); err != nil {
		log.Fatalf("❌ Failed to seed game data: %v", err)
	}

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes beyond what AutoMigrate derives from tags.
func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_group ON users(group_code)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_completed_quiz ON users(group_code, completed_quiz)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_order ON challenges(challenge_order)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quizzes_group ON quizzes(group_code)")
}
