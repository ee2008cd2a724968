package domain

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("not found")

// ValidationError reports rejected user input. Fields carries the offending
// field names when the caller distinguishes them (review submission does,
// the booking wizard deliberately does not).
type ValidationError struct {
	Msg    string
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}
	return e.Msg + ": " + strings.Join(e.Fields, ", ")
}

// CatalogRepository is the read-only catalog boundary. The in-memory seed
// store is the default implementation; a real data service may be swapped in
// as long as identifiers stay stable and the amenity/policy vocabularies are
// preserved.
type CatalogRepository interface {
	ListHotels(ctx context.Context) ([]Hotel, error)
	GetHotel(ctx context.Context, id string) (Hotel, error)
	GetRoom(ctx context.Context, hotelID, roomID string) (Hotel, Room, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// PaymentGateway is the submission capability behind the wizard's final
// transition. The bundled implementation simulates a payment backend with a
// fixed, context-cancellable latency and guaranteed success; a real backend
// can replace it without touching the state machine.
type PaymentGateway interface {
	Submit(ctx context.Context, draft BookingDraft) (Confirmation, error)
}

// Sort keys for search results.
type SortKey string

const (
	SortRecommended SortKey = "recommended" // preserve catalog order
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortRating      SortKey = "rating"
)

// SearchCriteria is one search/filter/sort configuration. Zero values of the
// set-like fields mean "no filter", never "match nothing". PriceMax is a
// pointer so an explicit ceiling of 0 stays distinct from "unset": nil means
// the default ceiling, 0 means the literal interval [PriceMin, 0].
type SearchCriteria struct {
	Location  string
	PriceMin  int
	PriceMax  *int
	Stars     []int
	Amenities []string
	Policies  []string
	Sort      SortKey
}

// DefaultPriceMax matches the upper bound of the storefront price slider.
const DefaultPriceMax = 10000
