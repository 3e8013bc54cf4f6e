package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
	"github.com/chronolux/storefront/internal/core/service"
)

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, order domain.PlacedOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) ArchiveOrder(ctx context.Context, order domain.PlacedOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type MockEventsProducer struct {
	mock.Mock
}

func (m *MockEventsProducer) ProduceEvent(ctx context.Context, e domain.ClientEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func testShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		FirstName: "Ada", LastName: "Byron",
		Email: "ada@example.com", Phone: "+44 20 7946 0958",
		Address: "12 St James Square", City: "London",
		State: "LDN", Zip: "SW1Y 4LB", Country: "UK",
	}
}

func checkoutWithCart(
	t *testing.T, submitter port.OrderSubmitter,
) (*service.Checkout, *service.Cart) {
	t.Helper()
	cart := service.NewCart()
	cart.Add(domain.CartLine{ProductID: "1", Name: "Submariner Date", Price: 14000, Quantity: 1})
	return service.NewCheckout("sess-1", cart, submitter, nil, nil), cart
}

func TestCheckoutBegin(t *testing.T) {

	t.Run("RefusesEmptyCart", func(t *testing.T) {
		flow := service.NewCheckout("sess-1", service.NewCart(), new(MockSubmitter), nil, nil)

		err := flow.Begin()

		require.ErrorIs(t, err, domain.ErrEmptyCart)
		assert.Empty(t, flow.State())
	})

	t.Run("EntersShippingWithFreshForm", func(t *testing.T) {
		flow, _ := checkoutWithCart(t, new(MockSubmitter))

		require.NoError(t, flow.Begin())

		assert.Equal(t, domain.StateShipping, flow.State())
		form := flow.Form()
		assert.True(t, form.SameAddress)
		assert.Empty(t, form.Shipping.Email)
	})

	t.Run("RestartsAbandonedFlow", func(t *testing.T) {
		flow, _ := checkoutWithCart(t, new(MockSubmitter))
		require.NoError(t, flow.Begin())
		require.NoError(t, flow.SubmitShipping(testShipping(), false))

		require.NoError(t, flow.Begin())

		assert.Equal(t, domain.StateShipping, flow.State())
		assert.Empty(t, flow.Form().Shipping.Email)
	})
}

func TestCheckoutTransitions(t *testing.T) {

	t.Run("ShippingAdvancesToPayment", func(t *testing.T) {
		flow, _ := checkoutWithCart(t, new(MockSubmitter))
		require.NoError(t, flow.Begin())

		require.NoError(t, flow.SubmitShipping(testShipping(), false))

		assert.Equal(t, domain.StatePayment, flow.State())
		form := flow.Form()
		assert.Equal(t, "ada@example.com", form.Shipping.Email)
		assert.False(t, form.SameAddress)
	})

	t.Run("PaymentAdvancesToReview", func(t *testing.T) {
		flow, _ := checkoutWithCart(t, new(MockSubmitter))
		require.NoError(t, flow.Begin())
		require.NoError(t, flow.SubmitShipping(testShipping(), true))

		err := flow.SubmitPayment(domain.PaymentInfo{
			Method:     domain.PaymentCreditCard,
			CardName:   "Ada Byron",
			CardNumber: "4111111111111111",
			Expiry:     "12/27",
			CVV:        "123",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StateReview, flow.State())
		assert.Equal(t, "4111111111111111", flow.Form().Payment.CardNumber)
	})

	t.Run("NonCardMethodDropsCardFields", func(t *testing.T) {
		flow, _ := checkoutWithCart(t, new(MockSubmitter))
		require.NoError(t, flow.Begin())
		require.NoError(t, flow.SubmitShipping(testShipping(), true))

		err := flow.SubmitPayment(domain.PaymentInfo{
			Method:     domain.PaymentPayPal,
			CardNumber: "4111111111111111",
			CVV:        "123",
		})

		require.NoError(t, err)
		form := flow.Form()
		assert.Equal(t, domain.PaymentPayPal, form.Payment.Method)
		assert.Empty(t, form.Payment.CardNumber)
		assert.Empty(t, form.Payment.CVV)
	})

	t.Run("OutOfOrderSubmitIsRejected", func(t *testing.T) {
		flow, _ := checkoutWithCart(t, new(MockSubmitter))
		require.NoError(t, flow.Begin())

		err := flow.SubmitPayment(domain.PaymentInfo{Method: domain.PaymentPayPal})

		require.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, domain.StateShipping, flow.State())
	})

	t.Run("BackKeepsFormIntact", func(t *testing.T) {
		flow, _ := checkoutWithCart(t, new(MockSubmitter))
		require.NoError(t, flow.Begin())
		require.NoError(t, flow.SubmitShipping(testShipping(), true))
		require.NoError(t, flow.SubmitPayment(domain.PaymentInfo{Method: domain.PaymentBankTransfer}))

		require.NoError(t, flow.Back())
		assert.Equal(t, domain.StatePayment, flow.State())

		require.NoError(t, flow.Back())
		assert.Equal(t, domain.StateShipping, flow.State())
		assert.Equal(t, "ada@example.com", flow.Form().Shipping.Email)
	})

	t.Run("BackFromShippingIsRejected", func(t *testing.T) {
		flow, _ := checkoutWithCart(t, new(MockSubmitter))
		require.NoError(t, flow.Begin())

		require.ErrorIs(t, flow.Back(), domain.ErrInvalidTransition)
	})
}

func advanceToReview(t *testing.T, flow *service.Checkout) {
	t.Helper()
	require.NoError(t, flow.Begin())
	require.NoError(t, flow.SubmitShipping(testShipping(), true))
	require.NoError(t, flow.SubmitPayment(domain.PaymentInfo{Method: domain.PaymentCreditCard}))
}

func TestCheckoutPlaceOrder(t *testing.T) {

	t.Run("CompletesFlowAndClearsCart", func(t *testing.T) {
		submitter := new(MockSubmitter)
		submitter.On("Submit", mock.Anything, mock.AnythingOfType("domain.PlacedOrder")).
			Return(nil).Once()
		flow, cart := checkoutWithCart(t, submitter)
		advanceToReview(t, flow)

		order, err := flow.PlaceOrder(context.Background())

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(order.Number, "CHR-"))
		assert.Equal(t, "sess-1", order.SessionID)
		assert.Equal(t, "14980", order.Totals.Total.String())
		assert.Equal(t, domain.PaymentCreditCard, order.Method)
		assert.Equal(t, domain.StateComplete, flow.State())
		assert.Empty(t, cart.Lines())
		submitter.AssertExpectations(t)
	})

	t.Run("ArchivesAndProducesEvent", func(t *testing.T) {
		submitter := new(MockSubmitter)
		submitter.On("Submit", mock.Anything, mock.Anything).Return(nil)
		archiver := new(MockArchiver)
		archiver.On("ArchiveOrder", mock.Anything, mock.Anything).Return(nil).Once()
		events := new(MockEventsProducer)
		events.On("ProduceEvent", mock.Anything, mock.MatchedBy(func(e domain.ClientEvent) bool {
			return e.Type == domain.EventOrderPlaced && e.SessionID == "sess-1"
		})).Return(nil).Once()

		cart := service.NewCart()
		cart.Add(domain.CartLine{ProductID: "2", Price: 3000, Quantity: 1})
		flow := service.NewCheckout("sess-1", cart, submitter, archiver, events)
		advanceToReview(t, flow)

		_, err := flow.PlaceOrder(context.Background())

		require.NoError(t, err)
		archiver.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("ArchiveFailureDoesNotFailOrder", func(t *testing.T) {
		submitter := new(MockSubmitter)
		submitter.On("Submit", mock.Anything, mock.Anything).Return(nil)
		archiver := new(MockArchiver)
		archiver.On("ArchiveOrder", mock.Anything, mock.Anything).
			Return(errors.New("storage down"))

		cart := service.NewCart()
		cart.Add(domain.CartLine{ProductID: "2", Price: 3000, Quantity: 1})
		flow := service.NewCheckout("sess-1", cart, submitter, archiver, nil)
		advanceToReview(t, flow)

		_, err := flow.PlaceOrder(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.StateComplete, flow.State())
	})

	t.Run("SubmitterFailureStaysAtReview", func(t *testing.T) {
		submitter := new(MockSubmitter)
		submitter.On("Submit", mock.Anything, mock.Anything).
			Return(errors.New("gateway timeout")).Once()
		submitter.On("Submit", mock.Anything, mock.Anything).Return(nil).Once()
		flow, cart := checkoutWithCart(t, submitter)
		advanceToReview(t, flow)

		_, err := flow.PlaceOrder(context.Background())

		require.Error(t, err)
		assert.Equal(t, domain.StateReview, flow.State())
		assert.NotEmpty(t, cart.Lines())

		_, err = flow.PlaceOrder(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.StateComplete, flow.State())
	})

	t.Run("RejectedOutsideReview", func(t *testing.T) {
		flow, _ := checkoutWithCart(t, new(MockSubmitter))
		require.NoError(t, flow.Begin())

		_, err := flow.PlaceOrder(context.Background())

		require.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("ResetsFormAfterCompletion", func(t *testing.T) {
		submitter := new(MockSubmitter)
		submitter.On("Submit", mock.Anything, mock.Anything).Return(nil)
		flow, _ := checkoutWithCart(t, submitter)
		advanceToReview(t, flow)

		_, err := flow.PlaceOrder(context.Background())

		require.NoError(t, err)
		assert.Empty(t, flow.Form().Shipping.Email)
		assert.Empty(t, flow.Form().Payment.Method)
	})
}
