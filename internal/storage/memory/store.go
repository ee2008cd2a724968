package memory

import (
	"context"

	"siamstay/internal/domain"
)

// Store serves the static seed catalog. It is immutable after construction
// and safe for concurrent reads; every accessor returns defensive copies so
// callers can never alias the seed's backing arrays.
type Store struct {
	hotels []domain.Hotel
	byID   map[string]int
}

func NewStore() *Store {
	s := &Store{
		hotels: seedHotels,
		byID:   make(map[string]int, len(seedHotels)),
	}
	for i, h := range s.hotels {
		s.byID[h.ID] = i
	}
	return s
}

func (s *Store) ListHotels(_ context.Context) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, len(s.hotels))
	for i, h := range s.hotels {
		out[i] = cloneHotel(h)
	}
	return out, nil
}

func (s *Store) GetHotel(_ context.Context, id string) (domain.Hotel, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return cloneHotel(s.hotels[i]), nil
}

func (s *Store) GetRoom(ctx context.Context, hotelID, roomID string) (domain.Hotel, domain.Room, error) {
	h, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return domain.Hotel{}, domain.Room{}, err
	}
	r, err := h.Room(roomID)
	if err != nil {
		return domain.Hotel{}, domain.Room{}, err
	}
	return h, r, nil
}

func cloneHotel(h domain.Hotel) domain.Hotel {
	out := h
	out.Images = append([]string(nil), h.Images...)
	out.Amenities = append([]string(nil), h.Amenities...)
	out.Policies = append([]string(nil), h.Policies...)
	if h.OriginalPrice != nil {
		v := *h.OriginalPrice
		out.OriginalPrice = &v
	}
	if h.Promotion != nil {
		v := *h.Promotion
		out.Promotion = &v
	}
	out.Rooms = make([]domain.Room, len(h.Rooms))
	for i, r := range h.Rooms {
		cr := r
		cr.Amenities = append([]string(nil), r.Amenities...)
		out.Rooms[i] = cr
	}
	return out
}
