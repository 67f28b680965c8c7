package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"osteria-backend/models"
)

const browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func trackRequest(path, referrer, ua string) *http.Request {
	req := jsonRequest("POST", "/api/analytics/events", map[string]string{
		"path":     path,
		"referrer": referrer,
	})
	if ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	return req
}

func TestTrackEventRecordsView(t *testing.T) {
	db := freshDB()
	router := setupAnalyticsRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, trackRequest("/menu", "https://google.com", browserUA))

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d: %s", w.Code, w.Body.String())
	}

	var event models.AnalyticsEvent
	if err := db.First(&event).Error; err != nil {
		t.Fatalf("event not stored: %v", err)
	}
	if event.Path != "/menu" {
		t.Errorf("expected path /menu, got %s", event.Path)
	}
	if event.VisitorHash == "" {
		t.Error("expected visitor hash to be set")
	}
}

func TestTrackEventDropsBots(t *testing.T) {
	db := freshDB()
	router := setupAnalyticsRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, trackRequest("/menu", "", "Googlebot/2.1 (+http://www.google.com/bot.html)"))

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected status 202 even for bots, got %d", w.Code)
	}

	var count int64
	db.Model(&models.AnalyticsEvent{}).Count(&count)
	if count != 0 {
		t.Errorf("expected bot view to be dropped, got %d events", count)
	}
}

func TestTrackEventMissingPath(t *testing.T) {
	db := freshDB()
	router := setupAnalyticsRouter(db)

	req := jsonRequest("POST", "/api/analytics/events", map[string]string{"referrer": "x"})
	req.Header.Set("User-Agent", browserUA)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Invalid payloads are swallowed so the beacon never errors.
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.AnalyticsEvent{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no event, got %d", count)
	}
}

func TestGetSummary(t *testing.T) {
	db := freshDB()
	router := setupAnalyticsRouter(db)

	_, token := seedTestUser(db, "admin@test.com", "admin")

	db.Create(&models.AnalyticsEvent{
		Path:        "/menu",
		VisitorHash: "hash-a",
		CreatedAt:   time.Now().Add(-2 * time.Hour),
	})
	db.Create(&models.AnalyticsEvent{
		Path:        "/",
		Referrer:    "https://instagram.com",
		VisitorHash: "hash-b",
		CreatedAt:   time.Now().Add(-time.Hour),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/analytics/summary?days=7", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if int(resp["total_views"].(float64)) != 2 {
		t.Errorf("expected 2 total views, got %v", resp["total_views"])
	}
	buckets := resp["buckets"].([]interface{})
	if len(buckets) != 7 {
		t.Errorf("expected 7 zero-filled buckets, got %d", len(buckets))
	}
}

func TestGetSummaryClampsDays(t *testing.T) {
	db := freshDB()
	router := setupAnalyticsRouter(db)

	_, token := seedTestUser(db, "admin@test.com", "admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/analytics/summary?days=9999", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if int(resp["days"].(float64)) != 365 {
		t.Errorf("expected days clamped to 365, got %v", resp["days"])
	}
}

func TestGetSummaryRequiresAdmin(t *testing.T) {
	db := freshDB()
	router := setupAnalyticsRouter(db)

	_, token := seedTestUser(db, "editor@test.com", "editor")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/analytics/summary", nil, token))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExportSummaryXLSX(t *testing.T) {
	db := freshDB()
	router := setupAnalyticsRouter(db)

	_, token := seedTestUser(db, "admin@test.com", "admin")

	db.Create(&models.AnalyticsEvent{
		Path:        "/menu",
		VisitorHash: "hash-a",
		CreatedAt:   time.Now().Add(-time.Hour),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/analytics/export?days=7", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("expected XLSX content type, got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("expected attachment disposition, got %s", cd)
	}
	if w.Body.Len() == 0 {
		t.Error("expected non-empty workbook body")
	}
}
