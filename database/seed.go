// database/seed.go - Built-in data seeding
package database

import (
	"errors"
	"log"
	"os"

	"cyberhunt/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedGameData inserts the built-in challenge catalog and quiz bank when the
// tables are empty, and bootstraps the admin account. Seeding never touches
// rows that already exist, so admin edits survive restarts.
func SeedGameData() error {
	db := GetDB()

	var challengeCount int64
	if err := db.Model(&models.Challenge{}).Count(&challengeCount).Error; err != nil {
		return err
	}
	if challengeCount == 0 {
		challenges := models.DefaultChallenges()
		if err := db.Create(&challenges).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d challenges", len(challenges))
	}

	var quizCount int64
	if err := db.Model(&models.Quiz{}).Count(&quizCount).Error; err != nil {
		return err
	}
	if quizCount == 0 {
		quizzes := models.DefaultQuizzes()
		if err := db.Create(&quizzes).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d quiz questions", len(quizzes))
	}

	return seedAdminUser(db)
}

// seedAdminUser creates the administrative account from env configuration
// when no admin exists yet.
func seedAdminUser(db *gorm.DB) error {
	var admin models.User
	err := db.Where("group_code = ?", models.AdminGroupCode).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("⚠️  ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.User{
		Username:         username,
		Password:         string(hash),
		GroupCode:        models.AdminGroupCode,
		CurrentChallenge: 1,
		LastQuizQuestion: 1,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin account %q created", username)
	return nil
}
