package port

import (
	"context"

	"github.com/chronolux/storefront/internal/core/domain"
)

// Inbound ports: the session-scoped stores the presentation layer
// drives. Implementations live in the service package.

type Catalog interface {
	Products() []domain.Product
	Featured() []domain.Product
	ByID(productID string) (domain.ProductDetails, error)
	Related(excludingID string) []domain.Product
	Reviews(productID string) []domain.Review
}

type CartStore interface {
	Add(line domain.CartLine)
	UpdateQuantity(productID string, quantity int)
	Remove(productID string)
	Clear()
	Lines() []domain.CartLine
	Totals() domain.Totals
}

type CheckoutFlow interface {
	Begin() error
	State() domain.CheckoutState
	Form() domain.CheckoutForm
	SubmitShipping(s domain.ShippingInfo, sameAddress bool) error
	SubmitPayment(p domain.PaymentInfo) error
	Back() error
	PlaceOrder(ctx context.Context) (domain.PlacedOrder, error)
}

type AuthStore interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, r domain.Registration) (domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser() (domain.User, error)
}

type Session interface {
	Cart() CartStore
	Checkout() CheckoutFlow
	Auth() AuthStore
}

type SessionProvider interface {
	Session(sessionID string) Session
}

// Outbound ports: capabilities the core requires from adapters.

// An OrderSubmitter is the abstract order placement capability.
// The default adapter simulates a backend with a fixed delay and
// never fails; a real gateway can substitute it without touching
// the checkout flow.
type OrderSubmitter interface {
	Submit(ctx context.Context, o domain.PlacedOrder) error
}

type OrderArchiver interface {
	ArchiveOrder(ctx context.Context, o domain.PlacedOrder) error
}

type EventsProducer interface {
	ProduceEvent(ctx context.Context, e domain.ClientEvent) error
}

// A UserVault persists one serialized user record per storage key,
// the service-side analog of the client-local storage slot.
type UserVault interface {
	SaveUser(key string, u domain.User) error
	LoadUser(key string) (domain.User, error)
	DeleteUser(key string) error
}
