package domain

type Hotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Province      string   `json:"province"`
	Description   string   `json:"description"`
	Rating        float64  `json:"rating"` // 0-10 scale, one decimal
	ReviewCount   int      `json:"review_count"`
	PricePerNight int      `json:"price_per_night"` // whole THB
	OriginalPrice *int     `json:"original_price,omitempty"`
	Stars         int      `json:"stars"` // 1-5
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	Policies      []string `json:"policies"`
	Rooms         []Room   `json:"rooms"`
	Featured      bool     `json:"featured"`
	Promotion     *string  `json:"promotion,omitempty"`
}

type Room struct {
	ID            string   `json:"id"` // unique within its owning hotel
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight int      `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	BedType       string   `json:"bed_type"`
	Size          float64  `json:"size_sqm"` // m²
	Amenities     []string `json:"amenities"`
	Image         string   `json:"image"`
}

// Room returns the room with the given id, or ErrNotFound.
func (h Hotel) Room(roomID string) (Room, error) {
	for _, r := range h.Rooms {
		if r.ID == roomID {
			return r, nil
		}
	}
	return Room{}, ErrNotFound
}
