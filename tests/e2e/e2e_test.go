//go:build e2e

// Package e2e exercises a running server end to end over HTTP.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

var client = &http.Client{Timeout: 10 * time.Second}

type blogResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
}

type subscriberResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func TestE2EBlogLifecycle(t *testing.T) {
	baseURL := envOrDefault("API_BASE_URL", "http://localhost:8080")
	slug := fmt.Sprintf("e2e-post-%d", time.Now().UnixNano())

	// Create
	created := blogResponse{}
	body := fmt.Sprintf(`{"title": "E2E post", "slug": %q, "content": "hello"}`, slug)
	doJSON(t, baseURL, "POST", "/api/blogs", body, http.StatusCreated, &created)
	if created.ID == "" {
		t.Fatal("created blog has no ID")
	}

	// Duplicate slug conflicts
	var conflict errorResponse
	doJSON(t, baseURL, "POST", "/api/blogs", body, http.StatusConflict, &conflict)
	if conflict.Code != "CONFLICT" {
		t.Errorf("expected CONFLICT code, got %q", conflict.Code)
	}

	// Read back
	var fetched blogResponse
	doJSON(t, baseURL, "GET", "/api/blogs/"+created.ID, "", http.StatusOK, &fetched)
	if fetched.Slug != slug {
		t.Errorf("fetched slug = %q, want %q", fetched.Slug, slug)
	}

	// Update replaces the row
	updatedBody := fmt.Sprintf(`{"title": "E2E post v2", "slug": %q, "content": "hello again"}`, slug)
	var updated blogResponse
	doJSON(t, baseURL, "PUT", "/api/blogs/"+created.ID, updatedBody, http.StatusOK, &updated)
	if updated.Title != "E2E post v2" {
		t.Errorf("updated title = %q", updated.Title)
	}

	var refetched blogResponse
	doJSON(t, baseURL, "GET", "/api/blogs/"+created.ID, "", http.StatusOK, &refetched)
	if refetched.Title != "E2E post v2" {
		t.Errorf("update not persisted, title = %q", refetched.Title)
	}

	// Delete returns the removed row, then the ID is gone
	var deleted blogResponse
	doJSON(t, baseURL, "DELETE", "/api/blogs/"+created.ID, "", http.StatusOK, &deleted)
	if deleted.ID != created.ID {
		t.Errorf("deleted ID = %q, want %q", deleted.ID, created.ID)
	}

	var notFound errorResponse
	doJSON(t, baseURL, "GET", "/api/blogs/"+created.ID, "", http.StatusNotFound, &notFound)
	if notFound.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND code, got %q", notFound.Code)
	}
}

func TestE2ESubscribe(t *testing.T) {
	baseURL := envOrDefault("API_BASE_URL", "http://localhost:8080")
	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())

	body := fmt.Sprintf(`{"email": %q}`, email)

	var created subscriberResponse
	doJSON(t, baseURL, "POST", "/api/subscribe", body, http.StatusCreated, &created)
	if created.Email != email {
		t.Errorf("created email = %q, want %q", created.Email, email)
	}

	// Subscribing twice conflicts
	var conflict errorResponse
	doJSON(t, baseURL, "POST", "/api/subscribe", body, http.StatusConflict, &conflict)
	if conflict.Code != "CONFLICT" {
		t.Errorf("expected CONFLICT code, got %q", conflict.Code)
	}

	// Cleanup
	var deleted subscriberResponse
	doJSON(t, baseURL, "DELETE", "/api/subscribe/"+created.ID, "", http.StatusOK, &deleted)
}

func TestE2EValidation(t *testing.T) {
	baseURL := envOrDefault("API_BASE_URL", "http://localhost:8080")

	var invalid errorResponse
	doJSON(t, baseURL, "POST", "/api/qna", "{not json", http.StatusBadRequest, &invalid)
	if invalid.Code != "INVALID_JSON" {
		t.Errorf("expected INVALID_JSON code, got %q", invalid.Code)
	}

	var missing errorResponse
	doJSON(t, baseURL, "POST", "/api/qna", `{"question": "only half"}`, http.StatusBadRequest, &missing)
	if missing.Code != "MISSING_FIELDS" {
		t.Errorf("expected MISSING_FIELDS code, got %q", missing.Code)
	}
}

func TestE2EListIsArray(t *testing.T) {
	baseURL := envOrDefault("API_BASE_URL", "http://localhost:8080")

	resp, err := client.Get(baseURL + "/api/awards")
	if err != nil {
		t.Skipf("Server not available: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	// Empty result must still be a JSON array, never null.
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("list response is not a JSON array: %v\nBody: %s", err, raw)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		t.Error("list response is null, want []")
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func doJSON(t *testing.T, baseURL, method, path, body string, wantStatus int, out interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Skipf("Server not available: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: status = %d, want %d\nBody: %s", method, path, resp.StatusCode, wantStatus, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("%s %s: decode response: %v\nBody: %s", method, path, err, raw)
		}
	}
}
