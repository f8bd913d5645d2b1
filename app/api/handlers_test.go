package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/govtjobs-alert/bot/app/database"
)

type fakePostRepo struct {
	count int
	err   error
}

func (f *fakePostRepo) IsPosted(fingerprint string) (bool, error)       { return false, nil }
func (f *fakePostRepo) MarkPosted(fingerprint, title, url string) error { return nil }
func (f *fakePostRepo) GetPostCount() (int, error)                      { return f.count, f.err }

type fakeChatRepo struct {
	count int
	err   error
}

func (f *fakeChatRepo) UpsertChat(chatID int64, title, kind string) error { return nil }
func (f *fakeChatRepo) RemoveChat(chatID int64) error                     { return nil }
func (f *fakeChatRepo) GetActiveChats() ([]database.Chat, error)          { return nil, nil }
func (f *fakeChatRepo) GetChatCount() (int, error)                        { return f.count, f.err }

func TestGetHealth(t *testing.T) {
	handler := NewHandler(&fakePostRepo{count: 42}, &fakeChatRepo{count: 7}, 30)
	server := NewServer(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body["timestamp"] == nil {
		t.Error("Expected timestamp in health response")
	}
	if body["version"] == nil {
		t.Error("Expected version in health response")
	}
	if body["chats"] != float64(7) {
		t.Errorf("Expected 7 chats, got %v", body["chats"])
	}
}

func TestGetStats(t *testing.T) {
	handler := NewHandler(&fakePostRepo{count: 42}, &fakeChatRepo{count: 7}, 30)
	server := NewServer(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body["active_chats"] != float64(7) {
		t.Errorf("Expected 7 active chats, got %v", body["active_chats"])
	}
	if body["posted_total"] != float64(42) {
		t.Errorf("Expected 42 posted, got %v", body["posted_total"])
	}
	if body["fetch_interval_minutes"] != float64(30) {
		t.Errorf("Expected interval 30, got %v", body["fetch_interval_minutes"])
	}
}

func TestGetStatsRepositoryError(t *testing.T) {
	handler := NewHandler(
		&fakePostRepo{err: errors.New("db closed")},
		&fakeChatRepo{err: errors.New("db closed")}, 30)
	server := NewServer(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 despite repository errors, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if _, ok := body["active_chats"]; ok {
		t.Error("Expected active_chats omitted on repository error")
	}
	if body["fetch_interval_minutes"] != float64(30) {
		t.Errorf("Expected interval 30, got %v", body["fetch_interval_minutes"])
	}
}

func TestUnknownRoute(t *testing.T) {
	handler := NewHandler(&fakePostRepo{}, &fakeChatRepo{}, 30)
	server := NewServer(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/feeds/abc", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown route, got %d", w.Code)
	}
}
