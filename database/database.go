package database

import (
	"fmt"
	"log"
	"os"

	"osteria-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=osteria_cms port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Ensure PostgreSQL has gen_random_uuid() available (pgcrypto extension).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Announcement{},
		&models.Closure{},
		&models.RecurringClosure{},
		&models.BusinessHours{},
		&models.MediaItem{},
		&models.GalleryImage{},
		&models.AnalyticsEvent{},
	)
}

func CreateDefaultAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" {
		adminEmail = "admin@osteria.local"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existingUser models.User
	result := db.Where("email = ?", adminEmail).First(&existingUser)
	if result.Error == nil {
		// Admin already exists
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
		Name:     "Admin User",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default admin created: %s", adminEmail)
	return nil
}

// SeedDefaultHours creates one BusinessHours row per weekday if none exist,
// so a fresh install renders a complete opening-hours table.
func SeedDefaultHours(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.BusinessHours{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for weekday := 0; weekday < 7; weekday++ {
		h := models.BusinessHours{
			Weekday:     weekday,
			LunchOpen:   "12:00",
			LunchClose:  "14:30",
			DinnerOpen:  "19:00",
			DinnerClose: "22:30",
		}
		if err := db.Create(&h).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded default business hours for all weekdays")
	return nil
}
