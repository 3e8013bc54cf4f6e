// Package gateway holds the order submission adapters. The simulated
// one stands in for a payment backend until a real integration lands.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

var _ port.OrderSubmitter = (*Simulated)(nil)

// A Simulated submitter waits a fixed processing delay and accepts
// every order. It fails only when the context is canceled mid-delay.
type Simulated struct {
	delay time.Duration
}

func NewSimulated(delay time.Duration) Simulated {
	return Simulated{delay}
}

func (s Simulated) Submit(ctx context.Context, o domain.PlacedOrder) error {
	const op = "Simulated.Submit"
	log := slog.With("op", op)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	case <-timer.C:
	}

	log.Info("order accepted",
		"orderNumber", o.Number, "total", o.Totals.Total.String())
	return nil
}
