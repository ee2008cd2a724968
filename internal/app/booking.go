package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"siamstay/internal/domain"
)

// DefaultNights stands in for real date selection; the storefront books a
// fixed two-night stay.
const DefaultNights = 2

// Quote derives the price summary from (pricePerNight, nights) alone.
// The service fee is 10% of the subtotal, rounded half-up in integer math.
func Quote(pricePerNight, nights int) domain.PriceQuote {
	subtotal := pricePerNight * nights
	fee := (subtotal + 5) / 10
	return domain.PriceQuote{
		Nights:        nights,
		PricePerNight: pricePerNight,
		Subtotal:      subtotal,
		ServiceFee:    fee,
		Total:         subtotal + fee,
	}
}

// Wizard owns all in-flight booking drafts. Drafts never outlive the
// process and are discarded on completion or abandonment.
type Wizard struct {
	catalog domain.CatalogRepository
	gateway domain.PaymentGateway

	mu     sync.Mutex
	drafts map[string]*domain.BookingDraft
}

func NewWizard(catalog domain.CatalogRepository, gateway domain.PaymentGateway) *Wizard {
	return &Wizard{
		catalog: catalog,
		gateway: gateway,
		drafts:  make(map[string]*domain.BookingDraft),
	}
}

// Start opens a draft for the given hotel/room. Stale identifiers surface as
// ErrNotFound; there is no other failure mode.
func (w *Wizard) Start(ctx context.Context, hotelID, roomID string) (domain.BookingDraft, error) {
	_, room, err := w.catalog.GetRoom(ctx, hotelID, roomID)
	if err != nil {
		return domain.BookingDraft{}, err
	}

	d := &domain.BookingDraft{
		ID:      uuid.NewString(),
		HotelID: hotelID,
		RoomID:  roomID,
		Step:    domain.StepGuestDetails,
		Quote:   Quote(room.PricePerNight, DefaultNights),
	}
	w.mu.Lock()
	w.drafts[d.ID] = d
	w.mu.Unlock()
	return *d, nil
}

func (w *Wizard) Get(draftID string) (domain.BookingDraft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.drafts[draftID]
	if !ok {
		return domain.BookingDraft{}, domain.ErrNotFound
	}
	return *d, nil
}

// SubmitGuest guards the GuestDetails -> Payment transition. All four
// required fields must be non-empty after trimming; the failure is a single
// combined message with no field-level granularity. Entered data is kept
// either way, and the step can be re-submitted (also from Payment, which is
// how "back" works).
func (w *Wizard) SubmitGuest(draftID string, g domain.GuestDetails) (domain.BookingDraft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.drafts[draftID]
	if !ok {
		return domain.BookingDraft{}, domain.ErrNotFound
	}
	if d.Step == domain.StepConfirmed {
		return domain.BookingDraft{}, &domain.ValidationError{Msg: "booking already confirmed"}
	}

	d.Guest = g // retain input even when validation fails
	if strings.TrimSpace(g.FirstName) == "" ||
		strings.TrimSpace(g.LastName) == "" ||
		strings.TrimSpace(g.Email) == "" ||
		strings.TrimSpace(g.Phone) == "" {
		return *d, &domain.ValidationError{Msg: "first name, last name, email and phone are required"}
	}

	d.Step = domain.StepPayment
	return *d, nil
}

// SubmitPayment guards the Payment -> Confirmation transition: a method from
// the closed set must be selected. Submission goes through the payment
// gateway; if the draft is abandoned while the submission is in flight, the
// completion is dropped instead of reviving discarded state.
func (w *Wizard) SubmitPayment(ctx context.Context, draftID string, m domain.PaymentMethod) (domain.BookingDraft, error) {
	w.mu.Lock()
	d, ok := w.drafts[draftID]
	if !ok {
		w.mu.Unlock()
		return domain.BookingDraft{}, domain.ErrNotFound
	}
	if d.Step != domain.StepPayment {
		w.mu.Unlock()
		return domain.BookingDraft{}, &domain.ValidationError{Msg: fmt.Sprintf("payment not available from step %q", d.Step)}
	}
	if !domain.ValidPaymentMethod(m) {
		w.mu.Unlock()
		return *d, &domain.ValidationError{Msg: "a payment method must be selected"}
	}
	d.PaymentMethod = m
	snapshot := *d
	w.mu.Unlock()

	// Gateway call happens outside the lock; it carries the simulated latency.
	conf, err := w.gateway.Submit(ctx, snapshot)
	if err != nil {
		return snapshot, err
	}

	hotel, room, err := w.catalog.GetRoom(ctx, snapshot.HotelID, snapshot.RoomID)
	if err != nil {
		return snapshot, err
	}
	conf.HotelName = hotel.Name
	conf.RoomName = room.Name
	conf.GuestName = strings.TrimSpace(snapshot.Guest.FirstName + " " + snapshot.Guest.LastName)
	conf.Email = snapshot.Guest.Email
	conf.Total = snapshot.Quote.Total

	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok = w.drafts[draftID]
	if !ok {
		return domain.BookingDraft{}, domain.ErrNotFound
	}
	d.PaymentMethod = m
	d.Step = domain.StepConfirmed
	d.Confirmation = &conf
	return *d, nil
}

// Abandon discards a draft. Discarding an unknown draft is a no-op: the
// caller navigated away, there is nothing to report.
func (w *Wizard) Abandon(draftID string) {
	w.mu.Lock()
	delete(w.drafts, draftID)
	w.mu.Unlock()
}
