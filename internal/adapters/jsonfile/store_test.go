package jsonfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"studytracker/internal/domain"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestLoad_MissingFile(t *testing.T) {
	store := setupStore(t)

	sessions, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty collection, got %d sessions", len(sessions))
	}

	// Load alone must not create the file
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist after Load", store.Path())
	}
}

func TestLoad_WhitespaceOnlyFile(t *testing.T) {
	store := setupStore(t)

	if err := os.WriteFile(store.Path(), []byte("  \n\t\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	sessions, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty collection, got %d sessions", len(sessions))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := setupStore(t)

	want := []domain.Session{
		{Topic: "Python", Minutes: 30, Date: "2025-01-01"},
		{Topic: "Math", Minutes: 45, Date: "2025-01-02"},
		{Topic: "Python", Minutes: 25, Date: "2025-01-03"},
	}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d sessions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("session %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSave_WritesIndentedArray(t *testing.T) {
	store := setupStore(t)

	err := store.Save([]domain.Session{{Topic: "Go", Minutes: 60, Date: "2025-02-01"}})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	content := string(raw)

	if !strings.HasPrefix(content, "[") {
		t.Errorf("expected a JSON array, got: %s", content)
	}
	for _, key := range []string{`"topic"`, `"minutes"`, `"date"`} {
		if !strings.Contains(content, key) {
			t.Errorf("expected key %s in output: %s", key, content)
		}
	}
	if !strings.Contains(content, "\n  ") {
		t.Errorf("expected indented output, got: %s", content)
	}
}

func TestSave_EmptyCollection(t *testing.T) {
	store := setupStore(t)

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Errorf("expected empty array, got: %s", raw)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	store := setupStore(t)

	if err := os.WriteFile(store.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := store.Load(); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestLoad_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "zero minutes",
			content: `[{"topic": "Python", "minutes": 0, "date": "2025-01-01"}]`,
		},
		{
			name:    "empty topic",
			content: `[{"topic": "  ", "minutes": 30, "date": "2025-01-01"}]`,
		},
		{
			name:    "malformed date",
			content: `[{"topic": "Python", "minutes": 30, "date": "January 1st"}]`,
		},
		{
			name:    "wrong minutes type",
			content: `[{"topic": "Python", "minutes": "thirty", "date": "2025-01-01"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupStore(t)

			if err := os.WriteFile(store.Path(), []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			if _, err := store.Load(); err == nil {
				t.Fatal("expected error for corrupt record, got nil")
			}
		})
	}
}

func TestNewStore_CreatesBaseDir(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(baseDir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	info, err := os.Stat(baseDir)
	if err != nil {
		t.Fatalf("expected base dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", baseDir)
	}
	if store.Path() != filepath.Join(baseDir, "sessions.json") {
		t.Errorf("unexpected path: %s", store.Path())
	}
}
