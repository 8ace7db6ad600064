package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "eatgo.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eatgo.db")
	for i := 0; i < 2; i++ {
		database, err := Open(path)
		if err != nil {
			t.Fatalf("Open #%d returned error: %v", i+1, err)
		}
		database.Close()
	}
}

func TestSaveAndLoadItem(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	if err := SaveItem(ctx, database, "accessToken", "tok123"); err != nil {
		t.Fatalf("SaveItem returned error: %v", err)
	}

	got, err := LoadItem(ctx, database, "accessToken")
	if err != nil {
		t.Fatalf("LoadItem returned error: %v", err)
	}
	if got != "tok123" {
		t.Errorf("LoadItem = %q, want %q", got, "tok123")
	}
}

func TestSaveItem_Overwrites(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	for _, v := range []string{"first", "second", ""} {
		if err := SaveItem(ctx, database, "accessToken", v); err != nil {
			t.Fatalf("SaveItem(%q) returned error: %v", v, err)
		}
		got, err := LoadItem(ctx, database, "accessToken")
		if err != nil {
			t.Fatalf("LoadItem returned error: %v", err)
		}
		if got != v {
			t.Errorf("LoadItem = %q, want %q", got, v)
		}
	}
}

func TestLoadItem_Missing(t *testing.T) {
	database := openTestDB(t)

	_, err := LoadItem(context.Background(), database, "nope")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("error = %v, want ErrItemNotFound", err)
	}
}

func TestStorage_DeleteItem(t *testing.T) {
	s := NewStorage(openTestDB(t))
	ctx := context.Background()

	if err := s.SaveItem(ctx, "k", "v"); err != nil {
		t.Fatalf("SaveItem returned error: %v", err)
	}
	if err := s.DeleteItem(ctx, "k"); err != nil {
		t.Fatalf("DeleteItem returned error: %v", err)
	}
	if err := s.DeleteItem(ctx, "k"); err != nil {
		t.Errorf("second DeleteItem returned error: %v", err)
	}
	if _, err := s.LoadItem(ctx, "k"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("error = %v, want ErrItemNotFound", err)
	}
}
