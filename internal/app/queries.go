package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"siamstay/internal/domain"
)

// QueryService serves the read side: hotel detail, featured rail, and
// search, with a cache-aside layer in front of the catalog.
type QueryService struct {
	catalog  domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(c domain.CatalogRepository, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{catalog: c, cache: cache, cacheTTL: ttl}
}

func (s *QueryService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	key := "hotel:" + id
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.catalog.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	return h, nil
}

func (s *QueryService) GetRoom(ctx context.Context, hotelID, roomID string) (domain.Hotel, domain.Room, error) {
	return s.catalog.GetRoom(ctx, hotelID, roomID)
}

// SearchHotels runs the pure engine over a catalog snapshot and caches the
// result keyed by a digest of the criteria.
func (s *QueryService) SearchHotels(ctx context.Context, c domain.SearchCriteria) ([]domain.Hotel, error) {
	key := searchKey(c)
	var cached []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	hotels, err := s.catalog.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	out := Search(hotels, c)

	// skip caching oversized result sets; a degenerate criteria combination
	// should not evict everything else
	if b, _ := json.Marshal(out); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *QueryService) FeaturedHotels(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := s.catalog.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	return Featured(hotels), nil
}

func searchKey(c domain.SearchCriteria) string {
	b, err := json.Marshal(c)
	if err != nil {
		// criteria is plain data; marshal cannot realistically fail, but a
		// degenerate shared key only costs cache efficiency, not correctness
		return "search:all"
	}
	sum := sha1.Sum(b)
	return fmt.Sprintf("search:%s", hex.EncodeToString(sum[:8]))
}
