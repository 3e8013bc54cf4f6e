package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

// POST v1/checkout           (200 OK, 409 Conflict -> redirect to cart)
// GET  v1/checkout           (200 OK, 404 Not found)
// POST v1/checkout/shipping  (200 OK, 400 Bad request, 409 Conflict)
// POST v1/checkout/payment   (200 OK, 400 Bad request, 409 Conflict)
// POST v1/checkout/back      (200 OK, 409 Conflict)
// POST v1/checkout/order     (200 OK, 409 Conflict)

type CheckoutHandler struct {
	sessions port.SessionProvider
}

func RegisterCheckout(mux *http.ServeMux, sessions port.SessionProvider) {
	h := CheckoutHandler{sessions}
	mux.HandleFunc("POST /v1/checkout", h.Begin)
	mux.HandleFunc("GET /v1/checkout", h.GetStatus)
	mux.HandleFunc("POST /v1/checkout/shipping", h.SubmitShipping)
	mux.HandleFunc("POST /v1/checkout/payment", h.SubmitPayment)
	mux.HandleFunc("POST /v1/checkout/back", h.Back)
	mux.HandleFunc("POST /v1/checkout/order", h.PlaceOrder)
}

func (h CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	flow := h.checkout(r)

	if err := flow.Begin(); err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			writeJSON(w, http.StatusConflict, ErrorResponse{
				Error:    "cart is empty",
				Redirect: "/cart",
			})
			return
		}
		h.fail(w, "Begin", err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckoutStatusDTO(flow.State(), flow.Form()))
}

func (h CheckoutHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	flow := h.checkout(r)

	state := flow.State()
	if state == "" {
		writeError(w, http.StatusNotFound, "checkout not started")
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutStatusDTO(state, flow.Form()))
}

func (h CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.SubmitShipping"
	log := slog.With("op", op)

	var req ShippingForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	flow := h.checkout(r)
	err := flow.SubmitShipping(domain.ShippingInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
	}, req.SameAddress)
	if err != nil {
		h.conflictOrFail(w, "SubmitShipping", err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckoutStatusDTO(flow.State(), flow.Form()))
}

func (h CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.SubmitPayment"
	log := slog.With("op", op)

	var req PaymentForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	method, ok := paymentMethod(req.Method)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown payment method")
		return
	}

	flow := h.checkout(r)
	err := flow.SubmitPayment(domain.PaymentInfo{
		Method:     method,
		CardName:   req.CardName,
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
	})
	if err != nil {
		h.conflictOrFail(w, "SubmitPayment", err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckoutStatusDTO(flow.State(), flow.Form()))
}

func (h CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	flow := h.checkout(r)

	if err := flow.Back(); err != nil {
		h.conflictOrFail(w, "Back", err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutStatusDTO(flow.State(), flow.Form()))
}

func (h CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	flow := h.checkout(r)

	order, err := flow.PlaceOrder(r.Context())
	if err != nil {
		h.conflictOrFail(w, "PlaceOrder", err)
		return
	}

	writeJSON(w, http.StatusOK, OrderConfirmation{
		OrderNumber: order.Number,
		Message: "Thank you for your purchase. Your order has been " +
			"confirmed and will be shipped shortly.",
	})
}

func (h CheckoutHandler) checkout(r *http.Request) port.CheckoutFlow {
	return h.sessions.Session(sessionID(r)).Checkout()
}

func (h CheckoutHandler) conflictOrFail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, domain.ErrInvalidTransition) {
		writeError(w, http.StatusConflict, "invalid checkout step")
		return
	}
	h.fail(w, op, err)
}

func (h CheckoutHandler) fail(w http.ResponseWriter, op string, err error) {
	writeError(w, http.StatusInternalServerError, "checkout failed")
	slog.Error("checkout failed", "op", makeOp("CheckoutHandler", op), "err", err)
}

func paymentMethod(s string) (domain.PaymentMethod, bool) {
	switch domain.PaymentMethod(s) {
	case domain.PaymentCreditCard, domain.PaymentPayPal, domain.PaymentBankTransfer:
		return domain.PaymentMethod(s), true
	}
	return "", false
}
