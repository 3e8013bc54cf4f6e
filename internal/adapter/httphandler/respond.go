package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/chronolux/storefront/internal/core/domain"
)

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func toProductDTO(p domain.Product) Product {
	return Product{
		ProductID:       p.ProductID,
		Name:            p.Name,
		Brand:           p.Brand,
		Price:           p.Price,
		Description:     p.Description,
		Image:           p.Image,
		New:             p.New,
		Movement:        p.Movement,
		CaseMaterial:    p.CaseMaterial,
		WaterResistance: p.WaterResistance,
	}
}

func toProductsDTO(ps []domain.Product) []Product {
	dtos := make([]Product, 0, len(ps))
	for _, p := range ps {
		dtos = append(dtos, toProductDTO(p))
	}
	return dtos
}

func toCartDTO(lines []domain.CartLine, t domain.Totals) Cart {
	c := Cart{
		Items:    make([]CartLine, 0, len(lines)),
		Subtotal: t.Subtotal.InexactFloat64(),
		Shipping: t.Shipping.InexactFloat64(),
		Tax:      t.Tax.InexactFloat64(),
		Total:    t.Total.InexactFloat64(),
	}
	for _, l := range lines {
		c.Items = append(c.Items, CartLine(l))
	}
	return c
}

func toCheckoutStatusDTO(state domain.CheckoutState, f domain.CheckoutForm) CheckoutStatus {
	return CheckoutStatus{
		State: state.String(),
		Shipping: ShippingForm{
			FirstName:   f.Shipping.FirstName,
			LastName:    f.Shipping.LastName,
			Email:       f.Shipping.Email,
			Phone:       f.Shipping.Phone,
			Address:     f.Shipping.Address,
			City:        f.Shipping.City,
			State:       f.Shipping.State,
			Zip:         f.Shipping.Zip,
			Country:     f.Shipping.Country,
			SameAddress: f.SameAddress,
		},
		Payment: PaymentForm{
			Method:     string(f.Payment.Method),
			CardName:   f.Payment.CardName,
			CardNumber: f.Payment.CardNumber,
			Expiry:     f.Payment.Expiry,
			CVV:        f.Payment.CVV,
		},
		SameAddress: f.SameAddress,
	}
}

func toUserDTO(u domain.User) User {
	dto := User{
		UserID:       u.UserID,
		Name:         u.Name,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		Orders:       make([]Order, 0, len(u.Orders)),
		Wishlist:     make([]WishlistItem, 0, len(u.Wishlist)),
		Appointments: make([]Appointment, 0, len(u.Appointments)),
	}
	for _, o := range u.Orders {
		od := Order{
			OrderID: o.OrderID,
			Date:    o.Date,
			Total:   o.Total,
			Status:  o.Status,
			Items:   make([]CartLine, 0, len(o.Items)),
		}
		for _, it := range o.Items {
			od.Items = append(od.Items, CartLine(it))
		}
		dto.Orders = append(dto.Orders, od)
	}
	for _, w := range u.Wishlist {
		dto.Wishlist = append(dto.Wishlist, WishlistItem(w))
	}
	for _, a := range u.Appointments {
		dto.Appointments = append(dto.Appointments, Appointment(a))
	}
	return dto
}
