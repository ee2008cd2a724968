package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"siamstay/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

// Repo is a MySQL-backed catalog. It satisfies domain.CatalogRepository for
// reads; the seeder uses the upsert methods to load it from the bundled data.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the catalog tables when they do not exist yet.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	// multiStatements is off by default; run statements one at a time.
	for _, stmt := range strings.Split(SchemaSQL, ";") {
		if stmt = strings.TrimSpace(stmt); stmt == "" {
			continue
		}
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	imgs, _ := json.Marshal(h.Images)
	amen, _ := json.Marshal(h.Amenities)
	pol, _ := json.Marshal(h.Policies)
	_, err := r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID,
		h.Name,
		h.Location,
		h.Province,
		h.Description,
		h.Rating,
		h.ReviewCount,
		h.PricePerNight,
		valInt(h.OriginalPrice),
		h.Stars,
		string(imgs),
		string(amen),
		string(pol),
		h.Featured,
		valStr(h.Promotion),
	)
	if err != nil {
		return err
	}
	for _, room := range h.Rooms {
		if err := r.upsertRoom(ctx, h.ID, room); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) upsertRoom(ctx context.Context, hotelID string, rm domain.Room) error {
	amen, _ := json.Marshal(rm.Amenities)
	_, err := r.db.ExecContext(ctx, upsertRoomSQL,
		hotelID,
		rm.ID,
		rm.Name,
		rm.Description,
		rm.PricePerNight,
		rm.MaxGuests,
		rm.BedType,
		rm.Size,
		string(amen),
		rm.Image,
	)
	return err
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, getHotelSQL, id)
	h, err := scanHotel(row)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Hotel{}, err
	}

	rows, err := r.db.QueryContext(ctx, listRoomsForHotelSQL, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var hotelID string
		rm, err := scanRoom(rows, &hotelID)
		if err != nil {
			return domain.Hotel{}, err
		}
		h.Rooms = append(h.Rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

func (r *Repo) GetRoom(ctx context.Context, hotelID, roomID string) (domain.Hotel, domain.Room, error) {
	h, err := r.GetHotel(ctx, hotelID)
	if err != nil {
		return domain.Hotel{}, domain.Room{}, err
	}
	rm, err := h.Room(roomID)
	if err != nil {
		return domain.Hotel{}, domain.Room{}, err
	}
	return h, rm, nil
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	index := map[string]int{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		index[h.ID] = len(out)
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	roomRows, err := r.db.QueryContext(ctx, listAllRoomsSQL)
	if err != nil {
		return nil, err
	}
	defer roomRows.Close()
	for roomRows.Next() {
		var hotelID string
		rm, err := scanRoom(roomRows, &hotelID)
		if err != nil {
			return nil, err
		}
		if i, ok := index[hotelID]; ok {
			out[i].Rooms = append(out[i].Rooms, rm)
		}
	}
	if err := roomRows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanHotel(row scanner) (domain.Hotel, error) {
	var h domain.Hotel
	var originalPrice sql.NullInt64
	var promotion sql.NullString
	var imagesJSON, amenitiesJSON, policiesJSON []byte

	if err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Location,
		&h.Province,
		&h.Description,
		&h.Rating,
		&h.ReviewCount,
		&h.PricePerNight,
		&originalPrice,
		&h.Stars,
		&imagesJSON,
		&amenitiesJSON,
		&policiesJSON,
		&h.Featured,
		&promotion,
	); err != nil {
		return domain.Hotel{}, err
	}

	if originalPrice.Valid {
		v := int(originalPrice.Int64)
		h.OriginalPrice = &v
	}
	if promotion.Valid {
		s := promotion.String
		h.Promotion = &s
	}
	_ = json.Unmarshal(imagesJSON, &h.Images)
	_ = json.Unmarshal(amenitiesJSON, &h.Amenities)
	_ = json.Unmarshal(policiesJSON, &h.Policies)
	return h, nil
}

func scanRoom(row scanner, hotelID *string) (domain.Room, error) {
	var rm domain.Room
	var amenitiesJSON []byte
	if err := row.Scan(
		hotelID,
		&rm.ID,
		&rm.Name,
		&rm.Description,
		&rm.PricePerNight,
		&rm.MaxGuests,
		&rm.BedType,
		&rm.Size,
		&amenitiesJSON,
		&rm.Image,
	); err != nil {
		return domain.Room{}, err
	}
	_ = json.Unmarshal(amenitiesJSON, &rm.Amenities)
	return rm, nil
}
