package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestContentResponseHealthy(t *testing.T) {
	rec := httptest.NewRecorder()
	ContentResponse(rec, 2, []string{"a", "b"}, false, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body StandardResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != "success" {
		t.Errorf("status = %q, want success", body.Status)
	}
	data, ok := body.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T", body.Data)
	}
	if data["degraded"] != false {
		t.Error("healthy read marked degraded")
	}
	if _, present := data["error"]; present {
		t.Error("healthy payload carries an error field")
	}
}

func TestContentResponseDegraded(t *testing.T) {
	rec := httptest.NewRecorder()
	ContentResponse(rec, 3, []string{"x", "y", "z"}, true, errors.New("store unreachable"))

	// Degraded still answers 200 so the section renders the fallback set.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body StandardResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	data, ok := body.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T", body.Data)
	}
	if data["degraded"] != true {
		t.Error("degraded flag not set")
	}
	if data["error"] != "store unreachable" {
		t.Errorf("error = %v, want store unreachable", data["error"])
	}
	items, ok := data["items"].([]interface{})
	if !ok || len(items) != 3 {
		t.Errorf("items = %v, want 3 entries", data["items"])
	}
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorResponse(rec, http.StatusBadRequest, "name is required")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body StandardResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != "error" || body.Error != "name is required" {
		t.Errorf("body = %+v", body)
	}
}
