package database

import (
	"os"
	"testing"

	"osteria-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS "users" (
			"id" TEXT PRIMARY KEY,
			"email" TEXT NOT NULL UNIQUE,
			"password" TEXT NOT NULL,
			"name" TEXT,
			"role" TEXT DEFAULT 'editor',
			"is_blocked" INTEGER DEFAULT 0,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "business_hours" (
			"id" TEXT PRIMARY KEY,
			"weekday" INTEGER NOT NULL UNIQUE,
			"lunch_open" TEXT NOT NULL DEFAULT '12:00',
			"lunch_close" TEXT NOT NULL DEFAULT '14:30',
			"dinner_open" TEXT NOT NULL DEFAULT '19:00',
			"dinner_close" TEXT NOT NULL DEFAULT '22:30',
			"is_closed" INTEGER DEFAULT 0,
			"created_at" DATETIME,
			"updated_at" DATETIME
		)`,
	}
	for _, ddl := range tables {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatal(err)
		}
	}

	return db
}

func TestCreateDefaultAdmin(t *testing.T) {
	db := setupTestDB(t)
	os.Setenv("ADMIN_EMAIL", "owner@test.local")
	os.Setenv("ADMIN_PASSWORD", "super-secret")
	defer os.Unsetenv("ADMIN_EMAIL")
	defer os.Unsetenv("ADMIN_PASSWORD")

	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatalf("CreateDefaultAdmin failed: %v", err)
	}

	var admin models.User
	if err := db.Where("email = ?", "owner@test.local").First(&admin).Error; err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if admin.Role != "admin" {
		t.Errorf("expected role admin, got %s", admin.Role)
	}
	if admin.Password == "super-secret" {
		t.Error("password stored in plaintext")
	}
}

func TestCreateDefaultAdminIdempotent(t *testing.T) {
	db := setupTestDB(t)
	os.Setenv("ADMIN_EMAIL", "owner@test.local")
	defer os.Unsetenv("ADMIN_EMAIL")

	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatal(err)
	}
	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatalf("second call should be a no-op, got: %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestSeedDefaultHours(t *testing.T) {
	db := setupTestDB(t)

	if err := SeedDefaultHours(db); err != nil {
		t.Fatalf("SeedDefaultHours failed: %v", err)
	}

	var hours []models.BusinessHours
	if err := db.Order("weekday asc").Find(&hours).Error; err != nil {
		t.Fatal(err)
	}
	if len(hours) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(hours))
	}
	for i, h := range hours {
		if h.Weekday != i {
			t.Errorf("expected weekday %d at index %d, got %d", i, i, h.Weekday)
		}
	}

	// Second run must not duplicate rows.
	if err := SeedDefaultHours(db); err != nil {
		t.Fatal(err)
	}
	var count int64
	db.Model(&models.BusinessHours{}).Count(&count)
	if count != 7 {
		t.Errorf("expected 7 rows after reseed, got %d", count)
	}
}
