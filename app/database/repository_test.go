package database

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestPostRepo_MarkAndCheck(t *testing.T) {
	repo := NewPostRepo(newTestDB(t))

	posted, err := repo.IsPosted("abc123")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if posted {
		t.Error("Fresh fingerprint should not be posted")
	}

	if err := repo.MarkPosted("abc123", "SSC CGL 2025", "https://ssc.nic.in"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	posted, err = repo.IsPosted("abc123")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !posted {
		t.Error("Marked fingerprint should be posted")
	}

	count, err := repo.GetPostCount()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 post, got %d", count)
	}
}

func TestPostRepo_MarkPostedIdempotent(t *testing.T) {
	repo := NewPostRepo(newTestDB(t))

	if err := repo.MarkPosted("abc123", "Title", "https://example.com"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := repo.MarkPosted("abc123", "Other Title", "https://example.com/b"); err != nil {
		t.Fatalf("Repeated mark should not error, got: %v", err)
	}

	count, err := repo.GetPostCount()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 post after duplicate mark, got %d", count)
	}
}

func TestChatRepo_UpsertRemove(t *testing.T) {
	repo := NewChatRepo(newTestDB(t))

	if err := repo.UpsertChat(-100123, "Jobs Group", "supergroup"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := repo.UpsertChat(42, "Admin", "private"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	chats, err := repo.GetActiveChats()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("Expected 2 chats, got %d", len(chats))
	}

	// Re-registering updates the title rather than adding a row
	if err := repo.UpsertChat(-100123, "Jobs Group v2", "supergroup"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	count, err := repo.GetChatCount()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 chats after re-registration, got %d", count)
	}

	if err := repo.RemoveChat(-100123); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	chats, err = repo.GetActiveChats()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(chats) != 1 {
		t.Fatalf("Expected 1 chat after removal, got %d", len(chats))
	}
	if chats[0].ChatID != 42 {
		t.Errorf("Expected remaining chat 42, got %d", chats[0].ChatID)
	}
}

func TestChatRepo_RemoveUnknownChat(t *testing.T) {
	repo := NewChatRepo(newTestDB(t))

	if err := repo.RemoveChat(999); err != nil {
		t.Errorf("Removing an unknown chat should not error, got: %v", err)
	}
}
