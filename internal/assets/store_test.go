package assets

import (
	"testing"

	"github.com/decker502/particlestudio/internal/sequence"
)

// TestStore_RegisterAndLookup registers a texture and resolves it by name.
func TestStore_RegisterAndLookup(t *testing.T) {
	s := NewStore()
	a, err := s.RegisterTexture("spark.png", 2048)
	if err != nil {
		t.Fatalf("RegisterTexture failed: %v", err)
	}
	if a.ID == "" {
		t.Error("expected a generated asset ID")
	}
	if a.Kind != Texture {
		t.Errorf("expected kind texture, got %q", a.Kind)
	}

	got, ok := s.Lookup("spark.png")
	if !ok {
		t.Fatal("expected to find spark.png")
	}
	if got.Size != 2048 {
		t.Errorf("expected size 2048, got %d", got.Size)
	}

	if _, ok := s.Lookup("missing.png"); ok {
		t.Error("expected miss for an unknown name")
	}
}

// TestStore_RegisterSequence registers a detected sequence under its base
// name with the summed frame sizes.
func TestStore_RegisterSequence(t *testing.T) {
	s := NewStore()
	info := sequence.Detect([]sequence.File{
		{Name: "coin_000.png", Size: 100},
		{Name: "coin_001.png", Size: 150},
	})
	if info == nil {
		t.Fatal("expected a sequence")
	}
	a, err := s.RegisterSequence(info)
	if err != nil {
		t.Fatalf("RegisterSequence failed: %v", err)
	}
	if a.Name != "coin" {
		t.Errorf("expected asset name 'coin', got %q", a.Name)
	}
	if a.Size != 250 {
		t.Errorf("expected summed size 250, got %d", a.Size)
	}
	if a.Sequence == nil || a.Sequence.Pattern != "coin_{000-001}.png" {
		t.Errorf("expected sequence info attached, got %+v", a.Sequence)
	}
}

// TestStore_ReplaceKeepsOrder verifies that re-registering a name replaces
// the asset without duplicating the listing.
func TestStore_ReplaceKeepsOrder(t *testing.T) {
	s := NewStore()
	if _, err := s.RegisterTexture("a.png", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RegisterTexture("b.png", 2); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RegisterTexture("a.png", 3); err != nil {
		t.Fatal(err)
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(list))
	}
	if list[0].Name != "a.png" || list[0].Size != 3 {
		t.Errorf("expected replaced a.png first, got %+v", list[0])
	}
	if list[1].Name != "b.png" {
		t.Errorf("expected b.png second, got %+v", list[1])
	}
}

// TestStore_Remove removes by name.
func TestStore_Remove(t *testing.T) {
	s := NewStore()
	if _, err := s.RegisterTexture("a.png", 1); err != nil {
		t.Fatal(err)
	}
	if !s.Remove("a.png") {
		t.Error("expected Remove to report success")
	}
	if s.Remove("a.png") {
		t.Error("expected Remove to report a miss the second time")
	}
	if len(s.List()) != 0 {
		t.Error("expected an empty listing")
	}
}

// TestStore_RejectsEmptyNames refuses unnameable assets.
func TestStore_RejectsEmptyNames(t *testing.T) {
	s := NewStore()
	if _, err := s.RegisterTexture("", 1); err == nil {
		t.Error("expected an error for an empty texture name")
	}
	if _, err := s.RegisterSequence(nil); err == nil {
		t.Error("expected an error for a nil sequence")
	}
}
