package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

// GET v1/products                       (200 OK)
// GET v1/products/featured              (200 OK)
// GET v1/products/{id}                  (200 OK, 404 Not found)
// GET v1/products/{id}/related          (200 OK)
// GET v1/products/{id}/reviews          (200 OK)

type CatalogHandler struct {
	catalog port.Catalog
	events  port.EventsProducer
}

func RegisterCatalog(
	mux *http.ServeMux, catalog port.Catalog, events port.EventsProducer,
) {
	h := CatalogHandler{catalog, events}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/featured", h.GetFeatured)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/products/{id}/related", h.GetRelated)
	mux.HandleFunc("GET /v1/products/{id}/reviews", h.GetReviews)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProductsDTO(h.catalog.Products()))
}

func (h CatalogHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProductsDTO(h.catalog.Featured()))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	id := r.PathValue("id")
	d, err := h.catalog.ByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to read product")
		log.Error("failed to read product", "productID", id, "err", err)
		return
	}

	h.produceViewed(r, id)

	dto := ProductDetails{
		Product:        toProductDTO(d.Product),
		Images:         d.Images,
		Specifications: d.Specifications,
		Features:       d.Features,
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h CatalogHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProductsDTO(h.catalog.Related(r.PathValue("id"))))
}

func (h CatalogHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	rs := h.catalog.Reviews(r.PathValue("id"))
	dtos := make([]Review, 0, len(rs))
	for _, rev := range rs {
		dtos = append(dtos, Review(rev))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// produceViewed emits a product_viewed event, best effort.
func (h CatalogHandler) produceViewed(r *http.Request, productID string) {
	const op = "CatalogHandler.produceViewed"

	if h.events == nil {
		return
	}

	e := domain.ClientEvent{
		Type:      domain.EventProductViewed,
		SessionID: sessionID(r),
		ProductID: productID,
		UnixTS:    time.Now().Unix(),
	}
	if err := h.events.ProduceEvent(r.Context(), e); err != nil {
		slog.Warn("failed to produce view event",
			"op", op, "productID", productID, "err", err)
	}
}
