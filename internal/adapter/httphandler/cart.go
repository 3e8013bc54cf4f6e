package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

// GET    v1/cart             (200 OK)
// POST   v1/cart/items       (200 OK, 400 Bad request, 404 Not found)
// PATCH  v1/cart/items/{id}  (200 OK, 400 Bad request)
// DELETE v1/cart/items/{id}  (200 OK)
// DELETE v1/cart             (204 No content)

type CartHandler struct {
	sessions port.SessionProvider
	catalog  port.Catalog
}

func RegisterCart(
	mux *http.ServeMux, sessions port.SessionProvider, catalog port.Catalog,
) {
	h := CartHandler{sessions, catalog}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", h.UpdateItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.ClearCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(r)
	writeJSON(w, http.StatusOK, toCartDTO(cart.Lines(), cart.Totals()))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var req AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	d, err := h.catalog.ByID(req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to read product")
		log.Error("failed to read product", "productID", req.ProductID, "err", err)
		return
	}

	cart := h.cart(r)
	cart.Add(domain.CartLine{
		ProductID: d.ProductID,
		Name:      d.Name,
		Brand:     d.Brand,
		Price:     d.Price,
		Image:     d.Image,
		Quantity:  clampQuantity(req.Quantity),
	})

	writeJSON(w, http.StatusOK, toCartDTO(cart.Lines(), cart.Totals()))
}

func (h CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.UpdateItem"
	log := slog.With("op", op)

	var req UpdateCartItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	// quantity missing from the payload falls back to 1
	quantity := 1
	if req.Quantity != nil {
		quantity = clampQuantity(*req.Quantity)
	}

	cart := h.cart(r)
	cart.UpdateQuantity(r.PathValue("id"), quantity)

	writeJSON(w, http.StatusOK, toCartDTO(cart.Lines(), cart.Totals()))
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(r)
	cart.Remove(r.PathValue("id"))
	writeJSON(w, http.StatusOK, toCartDTO(cart.Lines(), cart.Totals()))
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart(r).Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) cart(r *http.Request) port.CartStore {
	return h.sessions.Session(sessionID(r)).Cart()
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
