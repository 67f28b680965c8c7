package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"osteria-backend/models"
)

func weeklyGrid() []map[string]interface{} {
	grid := make([]map[string]interface{}, 7)
	for weekday := 0; weekday < 7; weekday++ {
		grid[weekday] = map[string]interface{}{
			"weekday":      weekday,
			"lunch_open":   "12:00",
			"lunch_close":  "14:30",
			"dinner_open":  "19:00",
			"dinner_close": "22:30",
			"is_closed":    false,
		}
	}
	return grid
}

func TestGetHoursOrdered(t *testing.T) {
	db := freshDB()
	router := setupHoursRouter(db)

	seedBusinessHours(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/hours", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponseArray(w)
	if len(resp) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(resp))
	}
	for i, raw := range resp {
		row := raw.(map[string]interface{})
		if int(row["weekday"].(float64)) != i {
			t.Errorf("expected weekday %d at position %d, got %v", i, i, row["weekday"])
		}
	}
}

func TestUpdateHoursFullGrid(t *testing.T) {
	db := freshDB()
	router := setupHoursRouter(db)

	_, token := seedTestUser(db, "admin@test.com", "admin")
	seedBusinessHours(db)

	grid := weeklyGrid()
	// Close Mondays entirely and shift Sunday dinner.
	grid[0]["is_closed"] = true
	grid[6]["dinner_open"] = "18:30"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/hours", grid, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var monday models.BusinessHours
	db.Where("weekday = ?", 0).First(&monday)
	if !monday.IsClosed {
		t.Error("expected Monday to be closed")
	}

	var sunday models.BusinessHours
	db.Where("weekday = ?", 6).First(&sunday)
	if sunday.DinnerOpen != "18:30" {
		t.Errorf("expected Sunday dinner_open 18:30, got %s", sunday.DinnerOpen)
	}
}

func TestUpdateHoursCreatesMissingRows(t *testing.T) {
	db := freshDB()
	router := setupHoursRouter(db)

	_, token := seedTestUser(db, "admin@test.com", "admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/hours", weeklyGrid(), token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.BusinessHours{}).Count(&count)
	if count != 7 {
		t.Errorf("expected 7 rows, got %d", count)
	}
}

func TestUpdateHoursWrongCount(t *testing.T) {
	db := freshDB()
	router := setupHoursRouter(db)

	_, token := seedTestUser(db, "admin@test.com", "admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/hours", weeklyGrid()[:5], token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateHoursDuplicateWeekday(t *testing.T) {
	db := freshDB()
	router := setupHoursRouter(db)

	_, token := seedTestUser(db, "admin@test.com", "admin")

	grid := weeklyGrid()
	grid[6]["weekday"] = 0

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/hours", grid, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateHoursInvalidTimeFormat(t *testing.T) {
	db := freshDB()
	router := setupHoursRouter(db)

	_, token := seedTestUser(db, "admin@test.com", "admin")

	grid := weeklyGrid()
	grid[2]["lunch_open"] = "noon"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/hours", grid, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateHoursRequiresAdmin(t *testing.T) {
	db := freshDB()
	router := setupHoursRouter(db)

	_, token := seedTestUser(db, "editor@test.com", "editor")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/hours", weeklyGrid(), token))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}
}
