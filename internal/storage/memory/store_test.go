package memory_test

import (
	"context"
	"testing"

	"siamstay/internal/domain"
	"siamstay/internal/storage/memory"
)

func TestStore_GetHotel(t *testing.T) {
	s := memory.NewStore()

	h, err := s.GetHotel(context.Background(), "1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Name != "The Siam Heritage Resort" || h.Province != "ภูเก็ต" {
		t.Fatalf("unexpected hotel: %+v", h)
	}
	if len(h.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(h.Rooms))
	}

	if _, err := s.GetHotel(context.Background(), "999"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_GetRoom(t *testing.T) {
	s := memory.NewStore()

	h, r, err := s.GetRoom(context.Background(), "1", "r2")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.ID != "1" || r.Name != "Premium Suite" || r.PricePerNight != 7500 {
		t.Fatalf("unexpected room: %+v", r)
	}

	if _, _, err := s.GetRoom(context.Background(), "1", "r999"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Mutating a returned hotel must never leak back into the store.
func TestStore_ReadersGetCopies(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	h1, _ := s.GetHotel(ctx, "1")
	h1.Amenities[0] = "CLOBBERED"
	h1.Rooms[0].Name = "CLOBBERED"

	h2, _ := s.GetHotel(ctx, "1")
	if h2.Amenities[0] != "WiFi ฟรี" || h2.Rooms[0].Name != "Deluxe Ocean View" {
		t.Fatalf("store state leaked through a returned copy: %+v", h2)
	}
}

func TestSeedInvariants(t *testing.T) {
	s := memory.NewStore()
	hotels, err := s.ListHotels(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(hotels) == 0 {
		t.Fatal("empty seed catalog")
	}
	for _, h := range hotels {
		if h.PricePerNight <= 0 {
			t.Errorf("hotel %s: non-positive price", h.ID)
		}
		if h.Stars < 1 || h.Stars > 5 {
			t.Errorf("hotel %s: stars out of range: %d", h.ID, h.Stars)
		}
		if h.OriginalPrice != nil && h.PricePerNight > *h.OriginalPrice {
			t.Errorf("hotel %s: discounted price above original", h.ID)
		}
		if len(h.Rooms) == 0 {
			t.Errorf("hotel %s: no rooms", h.ID)
		}
		for _, r := range h.Rooms {
			if r.PricePerNight <= 0 || r.MaxGuests <= 0 || r.Size <= 0 {
				t.Errorf("hotel %s room %s: non-positive numeric field", h.ID, r.ID)
			}
		}
	}
}
