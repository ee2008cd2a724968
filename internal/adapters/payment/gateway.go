package payment

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"siamstay/internal/adapters/observability"
	"siamstay/internal/domain"
)

// Gateway simulates a payment backend: a fixed, context-cancellable latency
// followed by guaranteed success. It sits behind domain.PaymentGateway so a
// real processor can replace it without touching the wizard.
type Gateway struct {
	latency time.Duration
}

func New(latency time.Duration) *Gateway {
	return &Gateway{latency: latency}
}

func (g *Gateway) Submit(ctx context.Context, d domain.BookingDraft) (domain.Confirmation, error) {
	start := time.Now()
	if !sleepCtx(ctx, g.latency) {
		observability.ObserveBooking(string(d.PaymentMethod), "canceled", time.Since(start))
		return domain.Confirmation{}, ctx.Err()
	}
	observability.ObserveBooking(string(d.PaymentMethod), "confirmed", time.Since(start))
	return domain.Confirmation{Reference: NewReference()}, nil
}

// NewReference issues a booking reference: STY-<year>-<8 uppercase hex>.
// The suffix comes from a fresh UUID, so references are unique and stable
// once issued.
func NewReference() string {
	id := uuid.New()
	return fmt.Sprintf("STY-%d-%s",
		time.Now().UTC().Year(),
		strings.ToUpper(hex.EncodeToString(id[:4])))
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
