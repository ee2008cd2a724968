package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"siamstay/internal/adapters/observability"
	"siamstay/internal/app"
	"siamstay/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	W *app.Wizard
	R *app.ReviewThreads

	// filter vocabularies served to search UIs
	Provinces      []string
	AmenityOptions []string
}

type problem struct {
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	Status int      `json:"status"`
	Detail string   `json:"detail,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/filters", h.filterOptions)
	s.mux.Get("/v1/hotels", h.searchHotels)
	s.mux.Get("/v1/hotels/featured", h.featuredHotels)
	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Get("/v1/hotels/{id}/reviews", h.listReviews)
	s.mux.Post("/v1/hotels/{id}/reviews", h.createReview)
	s.mux.Post("/v1/hotels/{id}/reviews/{reviewID}/helpful", h.markHelpful)

	s.mux.Post("/v1/bookings", h.startBooking)
	s.mux.Get("/v1/bookings/{id}", h.getBooking)
	s.mux.Post("/v1/bookings/{id}/guest", h.submitGuest)
	s.mux.Post("/v1/bookings/{id}/payment", h.submitPayment)
	s.mux.Delete("/v1/bookings/{id}", h.abandonBooking)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemFields(w, status, title, detail, nil)
}

func writeProblemFields(w http.ResponseWriter, status int, title, detail string, fields []string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	p := problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Fields: fields}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// respondErr maps service errors onto problem+json responses. Validation
// failures carry their field list; anything unrecognized is a 500.
func respondErr(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblemFields(w, http.StatusUnprocessableEntity, "Invalid Input", ve.Msg, ve.Fields)
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Msg("unhandled service error")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- catalog ----

func parseCriteria(r *http.Request) (domain.SearchCriteria, error) {
	q := r.URL.Query()
	c := domain.SearchCriteria{
		Location: q.Get("location"),
		Sort:     domain.SortKey(q.Get("sort")),
	}
	if c.Sort == "" {
		c.Sort = domain.SortRecommended
	}
	var err error
	if v := q.Get("price_min"); v != "" {
		if c.PriceMin, err = strconv.Atoi(v); err != nil || c.PriceMin < 0 {
			return c, errors.New("price_min must be a non-negative integer")
		}
	}
	if v := q.Get("price_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c, errors.New("price_max must be a non-negative integer")
		}
		c.PriceMax = &n // explicit ceiling, 0 included; absent means default
	}
	if v := q.Get("stars"); v != "" {
		for _, part := range strings.Split(v, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return c, errors.New("stars must be a comma-separated list of integers")
			}
			c.Stars = append(c.Stars, n)
		}
	}
	c.Amenities = splitCSV(q.Get("amenities"))
	c.Policies = splitCSV(q.Get("policies"))
	return c, nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *Handlers) filterOptions(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, struct {
		Provinces []string `json:"provinces"`
		Amenities []string `json:"amenities"`
	}{h.Provinces, h.AmenityOptions})
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	crit, err := parseCriteria(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", err.Error())
		return
	}
	observability.ObserveSearch()
	hotels, err := h.Q.SearchHotels(r.Context(), crit)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeCached(w, r, struct {
		Hotels []domain.Hotel `json:"hotels"`
		Total  int            `json:"total"`
	}{hotels, len(hotels)})
}

func (h *Handlers) featuredHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Q.FeaturedHotels(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	writeCached(w, r, struct {
		Hotels []domain.Hotel `json:"hotels"`
	}{hotels})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Q.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeCached(w, r, hotel)
}

// ---- reviews ----

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")
	sort := domain.ReviewSort(r.URL.Query().Get("sort"))
	if sort == "" {
		sort = domain.ReviewSortNewest
	}
	switch sort {
	case domain.ReviewSortNewest, domain.ReviewSortHighest, domain.ReviewSortLowest:
	default:
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "sort must be one of newest, highest, lowest")
		return
	}

	reviews, err := h.R.Sorted(r.Context(), hotelID, sort)
	if err != nil {
		respondErr(w, err)
		return
	}
	dist, err := h.R.Distribution(r.Context(), hotelID)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Reviews      []domain.Review           `json:"reviews"`
		Total        int                       `json:"total"`
		Distribution domain.RatingDistribution `json:"distribution"`
	}{reviews, len(reviews), dist})
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Author  string `json:"author"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	sub := domain.ReviewSubmission{Author: body.Author, Rating: body.Rating, Comment: body.Comment}
	rev, err := h.R.Add(r.Context(), chi.URLParam(r, "id"), sub)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rev)
}

func (h *Handlers) markHelpful(w http.ResponseWriter, r *http.Request) {
	viewer := r.Header.Get("X-Viewer-ID")
	if viewer == "" {
		viewer = remoteIP(r)
	}
	count, err := h.R.MarkHelpful(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "reviewID"), viewer)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		HelpfulCount int `json:"helpful_count"`
	}{count})
}

// ---- booking wizard ----

func (h *Handlers) startBooking(w http.ResponseWriter, r *http.Request) {
	var body struct {
		HotelID string `json:"hotel_id"`
		RoomID  string `json:"room_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	draft, err := h.W.Start(r.Context(), body.HotelID, body.RoomID)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, draft)
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	draft, err := h.W.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handlers) submitGuest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		SpecialRequests string `json:"special_requests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	g := domain.GuestDetails{
		FirstName:       body.FirstName,
		LastName:        body.LastName,
		Email:           body.Email,
		Phone:           body.Phone,
		SpecialRequests: body.SpecialRequests,
	}
	draft, err := h.W.SubmitGuest(chi.URLParam(r, "id"), g)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handlers) submitPayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	draft, err := h.W.SubmitPayment(r.Context(), chi.URLParam(r, "id"), domain.PaymentMethod(body.Method))
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handlers) abandonBooking(w http.ResponseWriter, r *http.Request) {
	h.W.Abandon(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
