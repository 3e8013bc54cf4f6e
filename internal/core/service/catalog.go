package service

import (
	"fmt"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

var _ port.Catalog = (*Catalog)(nil)

const (
	featuredCount = 3
	relatedCount  = 4
)

// A Catalog serves the static product list and its derived views.
// The data stands in for a catalog backend.
type Catalog struct {
	products []domain.Product
}

func NewCatalog() Catalog {
	return Catalog{products: catalogProducts}
}

func (c Catalog) Products() []domain.Product {
	ps := make([]domain.Product, len(c.products))
	copy(ps, c.products)
	return ps
}

func (c Catalog) Featured() []domain.Product {
	n := min(featuredCount, len(c.products))
	ps := make([]domain.Product, n)
	copy(ps, c.products[:n])
	return ps
}

func (c Catalog) ByID(productID string) (domain.ProductDetails, error) {
	const op = "Catalog.ByID"

	for _, p := range c.products {
		if p.ProductID == productID {
			return c.details(p), nil
		}
	}
	return domain.ProductDetails{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (c Catalog) Related(excludingID string) []domain.Product {
	var ps []domain.Product
	for _, p := range c.products {
		if p.ProductID == excludingID {
			continue
		}
		ps = append(ps, p)
		if len(ps) == relatedCount {
			break
		}
	}
	return ps
}

// Reviews returns the same fixed review set for every product.
// The productID argument is kept for the day reviews get real storage.
func (c Catalog) Reviews(string) []domain.Review {
	rs := make([]domain.Review, len(catalogReviews))
	copy(rs, catalogReviews)
	return rs
}

func (c Catalog) details(p domain.Product) domain.ProductDetails {
	d := domain.ProductDetails{
		Product: p,
		Images: []string{
			p.Image,
			"https://picsum.photos/1280/720?height=800&width=800",
			"https://picsum.photos/1280/720?height=800&width=800",
			"https://picsum.photos/1280/720?height=800&width=800",
		},
		Specifications: map[string]string{
			"caseDiameter":  "41mm",
			"caseThickness": "12.5mm",
			"bandMaterial":  "Stainless Steel",
			"movementType":  "Mechanical",
			"powerReserve":  "70 hours",
		},
		Features: []string{
			"Scratch-resistant sapphire crystal",
			"Luminescent hands and hour markers",
			"Screw-down crown",
			"Unidirectional rotating bezel",
			"Date display at 3 o'clock",
			"COSC certified chronometer",
		},
	}
	return d
}
