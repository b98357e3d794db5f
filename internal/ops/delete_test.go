package ops

import (
	"context"
	"testing"

	"github.com/tf2tools/skup/internal/config"
	"github.com/tf2tools/skup/internal/db"
	"github.com/tf2tools/skup/internal/errors"
)

func TestDelete_ByID(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	defer database.Close()

	stored, err := Store(context.Background(), database, config.DefaultConfig(), StoreInput{SKU: "264;11"})
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	output, err := Delete(database, DeleteInput{ID: stored.ID})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !output.Deleted {
		t.Error("Deleted should be true")
	}
	if output.ID != stored.ID {
		t.Errorf("ID = %q, want %q", output.ID, stored.ID)
	}

	// Soft delete: gone from active reads, present with IncludeDeleted.
	if _, err := db.GetByID(database, stored.ID, false); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("GetByID after delete should return ErrNotFound, got: %v", err)
	}
	it, err := db.GetByID(database, stored.ID, true)
	if err != nil {
		t.Fatalf("GetByID with includeDeleted failed: %v", err)
	}
	if it.DeletedAt == nil {
		t.Error("DeletedAt should be set")
	}
}

func TestDelete_ByName(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	defer database.Close()

	stored, err := Store(context.Background(), database, config.DefaultConfig(), StoreInput{
		SKU:  "264;11",
		Name: stringPtr("frontier"),
	})
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	output, err := Delete(database, DeleteInput{Name: "frontier"})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if output.ID != stored.ID {
		t.Errorf("ID = %q, want %q", output.ID, stored.ID)
	}
}

func TestDelete_NotFound(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	defer database.Close()

	_, err = Delete(database, DeleteInput{ID: "01MISSING"})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Delete should return ErrNotFound, got: %v", err)
	}
}

func TestDelete_AlreadyDeleted(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	defer database.Close()

	stored, err := Store(context.Background(), database, config.DefaultConfig(), StoreInput{SKU: "264;11"})
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if _, err := Delete(database, DeleteInput{ID: stored.ID}); err != nil {
		t.Fatalf("First Delete failed: %v", err)
	}

	_, err = Delete(database, DeleteInput{ID: stored.ID})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Second Delete should return ErrNotFound, got: %v", err)
	}
}

func TestDelete_FreesName(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	defer database.Close()

	cfg := config.DefaultConfig()
	input := StoreInput{SKU: "264;11", Name: stringPtr("frontier")}

	if _, err := Store(context.Background(), database, cfg, input); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if _, err := Delete(database, DeleteInput{Name: "frontier"}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// The name is reusable after a soft delete.
	if _, err := Store(context.Background(), database, cfg, input); err != nil {
		t.Fatalf("Store after Delete failed: %v", err)
	}
}
