package service

import (
	"sync"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

var _ port.CartStore = (*Cart)(nil)

// A Cart holds the authoritative line set for one session.
// Totals are derived on every read, never stored.
type Cart struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges the incoming line into an existing one with the same
// product id, otherwise appends it. Quantity is trusted as given,
// the presentation layer clamps it to a minimum of 1.
func (c *Cart) Add(line domain.CartLine) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == line.ProductID {
			c.lines[i].Quantity += line.Quantity
			return
		}
	}
	c.lines = append(c.lines, line)
}

// UpdateQuantity replaces the quantity of the matching line.
// No-op when no line matches.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	ls := make([]domain.CartLine, len(c.lines))
	copy(ls, c.lines)
	return ls
}

func (c *Cart) Totals() domain.Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.ComputeTotals(c.lines)
}
