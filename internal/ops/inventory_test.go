package ops

import (
	"context"
	"testing"

	"github.com/tf2tools/skup/internal/config"
	"github.com/tf2tools/skup/internal/db"
)

func TestInventory_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	defer database.Close()

	output, err := Inventory(database)
	if err != nil {
		t.Fatalf("Inventory failed: %v", err)
	}
	if output.Total != 0 {
		t.Errorf("Total = %d, want 0", output.Total)
	}
	if len(output.Qualities) != 0 {
		t.Errorf("len(Qualities) = %d, want 0", len(output.Qualities))
	}
}

func TestInventory_CountsByQuality(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	defer database.Close()

	cfg := config.DefaultConfig()
	for _, s := range []string{"264;11", "200;11", "205;5;u34", "5021;6", "30;6", "31;6"} {
		if _, err := Store(context.Background(), database, cfg, StoreInput{SKU: s}); err != nil {
			t.Fatalf("Store(%q) failed: %v", s, err)
		}
	}

	output, err := Inventory(database)
	if err != nil {
		t.Fatalf("Inventory failed: %v", err)
	}

	if output.Total != 6 {
		t.Errorf("Total = %d, want 6", output.Total)
	}
	if len(output.Qualities) != 3 {
		t.Fatalf("len(Qualities) = %d, want 3", len(output.Qualities))
	}

	// Buckets come back largest first.
	first := output.Qualities[0]
	if first.Quality != 6 || first.Count != 3 {
		t.Errorf("Qualities[0] = %+v, want quality 6 count 3", first)
	}
	if first.QualityName != "Unique" {
		t.Errorf("QualityName = %q, want %q", first.QualityName, "Unique")
	}
}

func TestInventory_ExcludesDeleted(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	defer database.Close()

	cfg := config.DefaultConfig()
	stored, err := Store(context.Background(), database, cfg, StoreInput{SKU: "264;11"})
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if _, err := Store(context.Background(), database, cfg, StoreInput{SKU: "200;6"}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if _, err := Delete(database, DeleteInput{ID: stored.ID}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	output, err := Inventory(database)
	if err != nil {
		t.Fatalf("Inventory failed: %v", err)
	}
	if output.Total != 1 {
		t.Errorf("Total = %d, want 1", output.Total)
	}
}
