package domain

import "time"

// A CheckoutState is one step of the linear checkout wizard.
type CheckoutState string

const (
	StateShipping CheckoutState = "shipping"
	StatePayment  CheckoutState = "payment"
	StateReview   CheckoutState = "review"
	StateComplete CheckoutState = "complete"
)

func (s CheckoutState) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentPayPal       PaymentMethod = "paypal"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

type (
	ShippingInfo struct {
		FirstName string
		LastName  string
		Email     string
		Phone     string
		Address   string
		City      string
		State     string
		Zip       string
		Country   string
	}

	// A PaymentInfo records the chosen method. Card fields are
	// captured only for the credit card method.
	PaymentInfo struct {
		Method     PaymentMethod
		CardName   string
		CardNumber string
		Expiry     string
		CVV        string
	}

	// A CheckoutForm is the single mutable form-state object driven
	// by the wizard. Back-navigation keeps it intact.
	CheckoutForm struct {
		Shipping    ShippingInfo
		Payment     PaymentInfo
		SameAddress bool
	}

	// A PlacedOrder is the result of a completed checkout.
	PlacedOrder struct {
		Number    string
		SessionID string
		Lines     []CartLine
		Totals    Totals
		Shipping  ShippingInfo
		Method    PaymentMethod
		PlacedAt  time.Time
	}
)
