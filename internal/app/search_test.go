package app_test

import (
	"reflect"
	"testing"

	"siamstay/internal/app"
	"siamstay/internal/domain"
)

func catalog() []domain.Hotel {
	return []domain.Hotel{
		{
			ID: "1", Name: "The Siam Heritage Resort", Location: "หาดป่าตอง, ภูเก็ต", Province: "ภูเก็ต",
			Rating: 9.2, PricePerNight: 4500, Stars: 5,
			Amenities: []string{"WiFi ฟรี", "สระว่ายน้ำ", "สปา"},
			Policies:  []string{"ยกเลิกฟรีภายใน 24 ชม.", "จ่ายหน้าที่พัก"},
		},
		{
			ID: "2", Name: "Chiang Mai Mountain Lodge", Location: "แม่ริม, เชียงใหม่", Province: "เชียงใหม่",
			Rating: 9.5, PricePerNight: 3200, Stars: 4,
			Amenities: []string{"WiFi ฟรี", "สระว่ายน้ำ"},
			Policies:  []string{"ยกเลิกฟรีภายใน 48 ชม."},
		},
		{
			ID: "3", Name: "Bangkok Skyline Hotel", Location: "สุขุมวิท, กรุงเทพฯ", Province: "กรุงเทพฯ",
			Rating: 8.8, PricePerNight: 2800, Stars: 5,
			Amenities: []string{"WiFi ฟรี", "ฟิตเนส"},
			Policies:  []string{"จ่ายหน้าที่พัก"},
		},
		{
			ID: "4", Name: "Pattaya Ocean View", Location: "จอมเทียน, พัทยา", Province: "ชลบุรี",
			Rating: 8.2, PricePerNight: 2800, Stars: 4,
			Amenities: []string{"WiFi ฟรี"},
			Policies:  []string{"จ่ายหน้าที่พัก"},
		},
	}
}

func ids(hs []domain.Hotel) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.ID
	}
	return out
}

func ceiling(v int) *int { return &v }

func TestSearch_EmptyFilterIsIdentity(t *testing.T) {
	c := catalog()
	got := app.Search(c, domain.SearchCriteria{Sort: domain.SortRecommended})
	if !reflect.DeepEqual(ids(got), []string{"1", "2", "3", "4"}) {
		t.Fatalf("identity broken: %v", ids(got))
	}
}

func TestSearch_Pure(t *testing.T) {
	c := catalog()
	crit := domain.SearchCriteria{Stars: []int{5}, Sort: domain.SortPriceLow}

	a := app.Search(c, crit)
	b := app.Search(c, crit)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same inputs produced different outputs")
	}
	if !reflect.DeepEqual(c, catalog()) {
		t.Fatal("input catalog was mutated")
	}
	// Sorting the result must not reorder the input either.
	if ids(c)[0] != "1" {
		t.Fatal("input order changed")
	}
}

func TestSearch_LocationSubstring(t *testing.T) {
	c := catalog()
	cases := []struct {
		query string
		want  []string
	}{
		{"ภูเก็ต", []string{"1"}},          // province
		{"สุขุมวิท", []string{"3"}},        // location
		{"Skyline", []string{"3"}},         // name
		{"ไม่มีที่ไหนเลย", []string{}},     // no match -> empty, not error
		{"", []string{"1", "2", "3", "4"}}, // empty query matches all
	}
	for _, tc := range cases {
		got := ids(app.Search(c, domain.SearchCriteria{Location: tc.query}))
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("query %q: got %v want %v", tc.query, got, tc.want)
		}
	}
}

func TestSearch_PriceBoundsInclusive(t *testing.T) {
	c := catalog()

	got := ids(app.Search(c, domain.SearchCriteria{PriceMin: 2800, PriceMax: ceiling(4500)}))
	if !reflect.DeepEqual(got, []string{"1", "2", "3", "4"}) {
		t.Fatalf("boundary hotels excluded: %v", got)
	}

	// One unit outside either bound is out.
	got = ids(app.Search(c, domain.SearchCriteria{PriceMin: 2801, PriceMax: ceiling(4499)}))
	if !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSearch_ExplicitZeroCeilingMatchesNothing(t *testing.T) {
	c := catalog()

	// [0,0] is a representable interval; every seed price is positive, so it
	// must exclude everything rather than fall back to the default ceiling.
	got := ids(app.Search(c, domain.SearchCriteria{PriceMin: 0, PriceMax: ceiling(0)}))
	if len(got) != 0 {
		t.Fatalf("zero ceiling admitted hotels: %v", got)
	}

	// A nil ceiling still means the default slider bound.
	got = ids(app.Search(c, domain.SearchCriteria{}))
	if len(got) != 4 {
		t.Fatalf("unset ceiling filtered: %v", got)
	}
}

func TestSearch_StarsMembership(t *testing.T) {
	c := catalog()
	got := ids(app.Search(c, domain.SearchCriteria{Stars: []int{4}}))
	if !reflect.DeepEqual(got, []string{"2", "4"}) {
		t.Fatalf("got %v", got)
	}
	// Empty star set matches all, not nothing.
	got = ids(app.Search(c, domain.SearchCriteria{Stars: nil}))
	if len(got) != 4 {
		t.Fatalf("empty star set filtered: %v", got)
	}
}

func TestSearch_AmenitiesAreConjunctive(t *testing.T) {
	c := catalog()

	got := ids(app.Search(c, domain.SearchCriteria{Amenities: []string{"WiFi ฟรี", "สระว่ายน้ำ"}}))
	if !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("got %v", got)
	}

	// Missing even one requested amenity excludes; a strict superset passes.
	got = ids(app.Search(c, domain.SearchCriteria{Amenities: []string{"WiFi ฟรี", "สระว่ายน้ำ", "สปา"}}))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSearch_PoliciesAreDisjunctiveSubstring(t *testing.T) {
	c := catalog()

	// Token is a substring of the stored policy, not an exact match.
	got := ids(app.Search(c, domain.SearchCriteria{Policies: []string{"ยกเลิกฟรี"}}))
	if !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("got %v", got)
	}

	// Any one of several tokens suffices.
	got = ids(app.Search(c, domain.SearchCriteria{Policies: []string{"ยกเลิกฟรี", "จ่ายหน้าที่พัก"}}))
	if len(got) != 4 {
		t.Fatalf("got %v", got)
	}
}

func TestSearch_SortStability(t *testing.T) {
	c := catalog() // hotels 3 and 4 share pricePerNight=2800

	got := ids(app.Search(c, domain.SearchCriteria{Sort: domain.SortPriceLow}))
	if !reflect.DeepEqual(got, []string{"3", "4", "2", "1"}) {
		t.Fatalf("price-low: %v", got)
	}
	got = ids(app.Search(c, domain.SearchCriteria{Sort: domain.SortPriceHigh}))
	if !reflect.DeepEqual(got, []string{"1", "2", "3", "4"}) {
		t.Fatalf("price-high (ties keep catalog order): %v", got)
	}
	got = ids(app.Search(c, domain.SearchCriteria{Sort: domain.SortRating}))
	if !reflect.DeepEqual(got, []string{"2", "1", "3", "4"}) {
		t.Fatalf("rating: %v", got)
	}
}

func TestFeatured(t *testing.T) {
	c := catalog()
	c[0].Featured = true
	c[2].Featured = true
	got := ids(app.Featured(c))
	if !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Fatalf("got %v", got)
	}
}
