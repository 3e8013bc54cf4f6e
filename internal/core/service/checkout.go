package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

var _ port.CheckoutFlow = (*Checkout)(nil)

// A Checkout drives the linear shipping -> payment -> review wizard
// for one session. Order placement goes through the OrderSubmitter
// capability; archiving and event producing are best effort and never
// fail the flow.
type Checkout struct {
	mu         sync.Mutex
	sessionID  string
	cart       port.CartStore
	submitter  port.OrderSubmitter
	archiver   port.OrderArchiver
	events     port.EventsProducer
	state      domain.CheckoutState
	form       domain.CheckoutForm
	processing bool
}

func NewCheckout(
	sessionID string,
	cart port.CartStore,
	submitter port.OrderSubmitter,
	archiver port.OrderArchiver,
	events port.EventsProducer,
) *Checkout {
	return &Checkout{
		sessionID: sessionID,
		cart:      cart,
		submitter: submitter,
		archiver:  archiver,
		events:    events,
	}
}

// Begin enters the shipping step with a fresh form. The flow refuses
// entry while the cart is empty, the only guard condition.
func (c *Checkout) Begin() error {
	const op = "Checkout.Begin"

	if len(c.cart.Lines()) == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = domain.StateShipping
	c.form = domain.CheckoutForm{SameAddress: true}
	c.processing = false
	return nil
}

// State reports the current step, empty until Begin succeeds.
func (c *Checkout) State() domain.CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Checkout) Form() domain.CheckoutForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

func (c *Checkout) SubmitShipping(s domain.ShippingInfo, sameAddress bool) error {
	const op = "Checkout.SubmitShipping"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateShipping {
		return fmt.Errorf("%s: %s: %w", op, c.state, domain.ErrInvalidTransition)
	}
	c.form.Shipping = s
	c.form.SameAddress = sameAddress
	c.state = domain.StatePayment
	return nil
}

func (c *Checkout) SubmitPayment(p domain.PaymentInfo) error {
	const op = "Checkout.SubmitPayment"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StatePayment {
		return fmt.Errorf("%s: %s: %w", op, c.state, domain.ErrInvalidTransition)
	}

	// only the credit card method captures structured data
	if p.Method != domain.PaymentCreditCard {
		p.CardName, p.CardNumber, p.Expiry, p.CVV = "", "", "", ""
	}
	c.form.Payment = p
	c.state = domain.StateReview
	return nil
}

// Back steps the wizard one state backwards keeping the form intact.
func (c *Checkout) Back() error {
	const op = "Checkout.Back"

	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case domain.StatePayment:
		c.state = domain.StateShipping
	case domain.StateReview:
		c.state = domain.StatePayment
	default:
		return fmt.Errorf("%s: %s: %w", op, c.state, domain.ErrInvalidTransition)
	}
	return nil
}

// PlaceOrder submits the order from the review step. On success the
// cart is cleared, the order is archived, an order_placed event is
// produced and the flow completes. On submitter failure the flow
// stays at review so the submission can be retried.
func (c *Checkout) PlaceOrder(ctx context.Context) (domain.PlacedOrder, error) {
	const op = "Checkout.PlaceOrder"

	c.mu.Lock()
	if c.state != domain.StateReview || c.processing {
		state := c.state
		c.mu.Unlock()
		return domain.PlacedOrder{},
			fmt.Errorf("%s: %s: %w", op, state, domain.ErrInvalidTransition)
	}
	c.processing = true

	lines := c.cart.Lines()
	order := domain.PlacedOrder{
		Number:    orderNumber(),
		SessionID: c.sessionID,
		Lines:     lines,
		Totals:    domain.ComputeTotals(lines),
		Shipping:  c.form.Shipping,
		Method:    c.form.Payment.Method,
		PlacedAt:  time.Now().UTC(),
	}
	c.mu.Unlock()

	err := c.submitter.Submit(ctx, order)

	c.mu.Lock()
	c.processing = false
	if err != nil {
		c.mu.Unlock()
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}
	c.state = domain.StateComplete
	c.form = domain.CheckoutForm{}
	c.mu.Unlock()

	c.cart.Clear()
	c.archive(ctx, order)
	c.produceOrderPlaced(ctx, order)

	return order, nil
}

func (c *Checkout) archive(ctx context.Context, order domain.PlacedOrder) {
	const op = "Checkout.archive"

	if c.archiver == nil {
		return
	}
	if err := c.archiver.ArchiveOrder(ctx, order); err != nil {
		slog.Error("failed to archive order",
			"op", op, "orderNumber", order.Number, "err", err)
	}
}

func (c *Checkout) produceOrderPlaced(ctx context.Context, order domain.PlacedOrder) {
	const op = "Checkout.produceOrderPlaced"

	if c.events == nil {
		return
	}
	e := domain.ClientEvent{
		Type:        domain.EventOrderPlaced,
		SessionID:   c.sessionID,
		OrderNumber: order.Number,
		TotalAmount: order.Totals.Total.InexactFloat64(),
		UnixTS:      order.PlacedAt.Unix(),
	}
	if err := c.events.ProduceEvent(ctx, e); err != nil {
		slog.Error("failed to produce order event",
			"op", op, "orderNumber", order.Number, "err", err)
	}
}

func orderNumber() string {
	return fmt.Sprintf("CHR-%d", rand.IntN(900000)+100000)
}
