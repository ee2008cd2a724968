package domain

type WizardStep string

const (
	StepGuestDetails WizardStep = "guest_details"
	StepPayment      WizardStep = "payment"
	StepConfirmed    WizardStep = "confirmed"
)

type PaymentMethod string

const (
	PayCredit    PaymentMethod = "credit"
	PayBank      PaymentMethod = "bank"
	PayPromptPay PaymentMethod = "promptpay"
)

// ValidPaymentMethod reports membership in the closed payment-method set.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PayCredit, PayBank, PayPromptPay:
		return true
	}
	return false
}

type GuestDetails struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests,omitempty"` // optional, unvalidated
}

// PriceQuote is derived from (room price, nights) alone and is re-derivable
// identically: subtotal = price*nights, fee = round-half-up(subtotal*0.10).
type PriceQuote struct {
	Nights        int `json:"nights"`
	PricePerNight int `json:"price_per_night"`
	Subtotal      int `json:"subtotal"`
	ServiceFee    int `json:"service_fee"`
	Total         int `json:"total"`
}

type Confirmation struct {
	Reference string `json:"reference"`
	HotelName string `json:"hotel_name"`
	RoomName  string `json:"room_name"`
	GuestName string `json:"guest_name"`
	Email     string `json:"email"`
	Total     int    `json:"total"`
}

// BookingDraft is transient, wizard-scoped state. It exists for the duration
// of one booking attempt and is discarded on completion or abandonment.
type BookingDraft struct {
	ID            string        `json:"id"`
	HotelID       string        `json:"hotel_id"`
	RoomID        string        `json:"room_id"`
	Step          WizardStep    `json:"step"`
	Guest         GuestDetails  `json:"guest"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Quote         PriceQuote    `json:"quote"`
	Confirmation  *Confirmation `json:"confirmation,omitempty"`
}
