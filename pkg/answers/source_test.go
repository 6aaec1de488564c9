package answers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const remoteSheet = `{"user_id": "remote", "answers": {"q1": {"kind": "single", "selected_option": "b"}}}`

func TestFetchFromFile(t *testing.T) {
	path := writeFile(t, "answers.json", []byte(remoteSheet))

	data, err := fetchFromFile(path)
	if err != nil {
		t.Fatalf("Failed to fetch from file: %v", err)
	}

	if string(data) != remoteSheet {
		t.Errorf("Expected content '%s', got '%s'", remoteSheet, string(data))
	}
}

func TestFetchFromFileEmpty(t *testing.T) {
	_, err := fetchFromFile(writeFile(t, "empty.json", nil))
	if err == nil {
		t.Error("Expected error fetching empty file, got nil")
	}
}

func TestLoadFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(remoteSheet))
	}))
	defer server.Close()

	sheet, err := Load(server.URL)
	if err != nil {
		t.Fatalf("Failed to load from URL: %v", err)
	}

	if sheet.UserID != "remote" {
		t.Errorf("Expected user 'remote', got '%s'", sheet.UserID)
	}
}

func TestLoadManyFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(remoteSheet + "\n" + remoteSheet + "\n"))
	}))
	defer server.Close()

	sheets, err := LoadMany(server.URL)
	if err != nil {
		t.Fatalf("Failed to load from URL: %v", err)
	}

	if len(sheets) != 2 {
		t.Errorf("Expected 2 sheets, got %d", len(sheets))
	}
}

func TestFetchFromURLErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := fetchFromURL(context.Background(), server.URL)
	if err == nil {
		t.Error("Expected error for 404 status, got nil")
	}
}

func TestFetchFromURLEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := fetchFromURL(context.Background(), server.URL)
	if err == nil {
		t.Error("Expected error for empty body, got nil")
	}
}

func TestFetchFromURLTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(remoteSheet))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := LoadWithContext(ctx, server.URL)
	if err == nil {
		t.Error("Expected timeout error, got nil")
	}
}
