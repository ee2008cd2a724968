package app

import (
	"sort"
	"strings"

	"siamstay/internal/domain"
)

// Search filters and orders a catalog snapshot. It is pure: the input slice
// and its records are never mutated, and identical inputs always produce
// identical output. An empty result is a valid output, not an error.
//
// Predicates run in a fixed order — location, price, stars, amenities,
// policies — then a stable sort. Matching is case-sensitive; the catalog
// vocabulary is Thai, which has no letter case.
func Search(hotels []domain.Hotel, c domain.SearchCriteria) []domain.Hotel {
	priceMax := domain.DefaultPriceMax
	if c.PriceMax != nil {
		priceMax = *c.PriceMax
	}

	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if c.Location != "" && !matchesLocation(h, c.Location) {
			continue
		}
		if h.PricePerNight < c.PriceMin || h.PricePerNight > priceMax {
			continue
		}
		if len(c.Stars) > 0 && !containsInt(c.Stars, h.Stars) {
			continue
		}
		if len(c.Amenities) > 0 && !hasAllAmenities(h.Amenities, c.Amenities) {
			continue
		}
		if len(c.Policies) > 0 && !matchesAnyPolicy(h.Policies, c.Policies) {
			continue
		}
		out = append(out, h)
	}

	switch c.Sort {
	case domain.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight < out[j].PricePerNight })
	case domain.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight > out[j].PricePerNight })
	case domain.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		// recommended: keep catalog order
	}
	return out
}

// Location matches as a substring of province, location or name.
func matchesLocation(h domain.Hotel, q string) bool {
	return strings.Contains(h.Province, q) ||
		strings.Contains(h.Location, q) ||
		strings.Contains(h.Name, q)
}

// Every requested amenity must be present (exact membership, AND).
func hasAllAmenities(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, a := range have {
			if a == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// At least one requested token must appear as a substring of at least one
// policy string (OR).
func matchesAnyPolicy(policies, tokens []string) bool {
	for _, tok := range tokens {
		for _, p := range policies {
			if strings.Contains(p, tok) {
				return true
			}
		}
	}
	return false
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Featured selects the landing-page subset in catalog order.
func Featured(hotels []domain.Hotel) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.Featured {
			out = append(out, h)
		}
	}
	return out
}
