//go:build e2e

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/extracker/extracker/internal/handler/dto"
	"github.com/extracker/extracker/internal/testutil"
)

// These tests run against a live server, e.g. one started with
// STORE_DRIVER=postgres. EXTRACKER_BASE_URL defaults to localhost:8080.

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var buf io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		buf = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && resp.ContentLength != 0 {
			t.Fatalf("decode response: %v", err)
		}
	}

	return resp.StatusCode
}

func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("EXTRACKER_BASE_URL", "http://localhost:8080")
	username := testutil.UniqueID("e2e")

	var user dto.UserResponse
	if status := doJSON(t, http.MethodPost, baseURL+"/api/users", map[string]any{"username": username}, &user); status != http.StatusOK {
		t.Fatalf("create user: status %d", status)
	}
	if user.ID == "" || user.Username != username {
		t.Fatalf("create user: unexpected response %+v", user)
	}

	var dup dto.ErrorResponse
	if status := doJSON(t, http.MethodPost, baseURL+"/api/users", map[string]any{"username": username}, &dup); status != http.StatusBadRequest {
		t.Fatalf("duplicate user: status %d, want 400", status)
	}

	for i, date := range []string{"2024-01-01", "2024-01-20", "2024-02-01"} {
		payload := map[string]any{"description": "e2e run", "duration": 10 + i, "date": date}
		var exercise dto.ExerciseResponse
		status := doJSON(t, http.MethodPost, baseURL+"/api/users/"+user.ID+"/exercises", payload, &exercise)
		if status != http.StatusOK {
			t.Fatalf("add exercise %s: status %d", date, status)
		}
		if exercise.ID != user.ID {
			t.Errorf("exercise _id = %q, want user id %q", exercise.ID, user.ID)
		}
	}

	var log dto.LogResponse
	status := doJSON(t, http.MethodGet, baseURL+"/api/users/"+user.ID+"/logs?from=2024-01-01&to=2024-01-31", nil, &log)
	if status != http.StatusOK {
		t.Fatalf("logs: status %d", status)
	}
	if log.Count != 2 || len(log.Log) != 2 {
		t.Fatalf("logs: count = %d, entries = %d, want 2", log.Count, len(log.Log))
	}
	if log.Log[0].Date != "Mon Jan 01 2024" {
		t.Errorf("first entry date = %q", log.Log[0].Date)
	}

	status = doJSON(t, http.MethodGet, baseURL+"/api/users/"+user.ID+"/logs?limit=1", nil, &log)
	if status != http.StatusOK || log.Count != 1 {
		t.Fatalf("limited logs: status %d, count %d", status, log.Count)
	}

	var users []dto.UserResponse
	if status := doJSON(t, http.MethodGet, baseURL+"/api/users", nil, &users); status != http.StatusOK {
		t.Fatalf("list users: status %d", status)
	}
	found := false
	for _, u := range users {
		if u.ID == user.ID && u.Username == username {
			found = true
		}
	}
	if !found {
		t.Errorf("created user %s missing from list", user.ID)
	}
}

func TestE2EUnknownUser(t *testing.T) {
	baseURL := envOrDefault("EXTRACKER_BASE_URL", "http://localhost:8080")

	var body dto.ErrorResponse
	status := doJSON(t, http.MethodGet, baseURL+"/api/users/does-not-exist/logs", nil, &body)
	if status != http.StatusNotFound || body.Error != "user not found" {
		t.Errorf("unknown user logs: status %d, body %+v", status, body)
	}
}
