package routes

import (
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"osteria-backend/analytics"
	"osteria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type mockStorage struct{}

func (m *mockStorage) UploadMedia(file multipart.File, filename, contentType string) (string, string, error) {
	return "", "", nil
}
func (m *mockStorage) DeleteObject(objectPath string) error { return nil }

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-for-routes")
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS "users" (
			"id" TEXT PRIMARY KEY, "email" TEXT NOT NULL UNIQUE, "password" TEXT NOT NULL,
			"name" TEXT, "role" TEXT DEFAULT 'editor', "is_blocked" INTEGER DEFAULT 0,
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "refresh_tokens" (
			"id" TEXT PRIMARY KEY, "user_id" TEXT NOT NULL, "token" TEXT NOT NULL UNIQUE,
			"expires_at" DATETIME NOT NULL, "revoked_at" DATETIME, "created_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "announcements" (
			"id" TEXT PRIMARY KEY, "title" TEXT NOT NULL, "body" TEXT, "image_url" TEXT,
			"is_published" INTEGER DEFAULT 0, "starts_at" DATETIME, "ends_at" DATETIME,
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "closures" (
			"id" TEXT PRIMARY KEY, "date" DATETIME NOT NULL, "slot" TEXT NOT NULL DEFAULT 'ALL',
			"note" TEXT, "created_at" DATETIME, "updated_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "recurring_closures" (
			"id" TEXT PRIMARY KEY, "weekday" INTEGER NOT NULL, "slot" TEXT NOT NULL DEFAULT 'ALL',
			"note" TEXT, "starts_on" DATETIME, "ends_on" DATETIME,
			"interval_weeks" INTEGER NOT NULL DEFAULT 1, "created_at" DATETIME, "updated_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "business_hours" (
			"id" TEXT PRIMARY KEY, "weekday" INTEGER NOT NULL UNIQUE,
			"lunch_open" TEXT NOT NULL DEFAULT '12:00', "lunch_close" TEXT NOT NULL DEFAULT '14:30',
			"dinner_open" TEXT NOT NULL DEFAULT '19:00', "dinner_close" TEXT NOT NULL DEFAULT '22:30',
			"is_closed" INTEGER DEFAULT 0, "created_at" DATETIME, "updated_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "media_items" (
			"id" TEXT PRIMARY KEY, "url" TEXT NOT NULL, "object_path" TEXT NOT NULL,
			"filename" TEXT, "content_type" TEXT, "size" INTEGER,
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "gallery_images" (
			"id" TEXT PRIMARY KEY, "media_id" TEXT NOT NULL, "caption" TEXT,
			"position" INTEGER NOT NULL DEFAULT 0,
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "analytics_events" (
			"id" TEXT PRIMARY KEY, "path" TEXT NOT NULL, "referrer" TEXT,
			"visitor_hash" TEXT NOT NULL, "created_at" DATETIME
		)`,
	}

	for _, sql := range tables {
		if err := db.Exec(sql).Error; err != nil {
			t.Fatal(err)
		}
	}
	return db
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := setupTestDB(t)
	r := gin.New()
	SetupRoutes(r, db, &mockStorage{}, analytics.NewTracker(db))
	return r, db
}

func TestHealthCheck(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPublicClosuresRoute(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/closures", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPublicHoursRoute(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/hours", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProtectedRouteRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/profile", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminRouteBlocksNonAdmin(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := utils.GenerateToken(uuid.New(), "user@test.com", "editor")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/closures", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminRouteRequiresToken(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/analytics/summary", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}
