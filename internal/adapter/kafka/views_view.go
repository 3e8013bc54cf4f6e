package kafka

import (
	"context"
	"log/slog"

	"github.com/lovoo/goka"
)

// A ProductViewsView reads the per-product view counters maintained
// by [ProductViewsProcessor].
type ProductViewsView struct {
	gv *goka.View
}

func NewProductViewsView(
	seedBrokers []string, group string,
) (ProductViewsView, error) {
	const op = "NewProductViewsView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(group)),
		ViewCountCodec{},
	)
	if err != nil {
		return ProductViewsView{}, opErr(err, op)
	}

	return ProductViewsView{gv}, nil
}

func (v ProductViewsView) Run(ctx context.Context) {
	const op = "ProductViewsView.Run"
	log := slog.With("op", op)

	if err := v.gv.Run(ctx); err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

// Views returns the view counter for the product, zero when the
// product was never viewed.
func (v ProductViewsView) Views(productID string) (int64, error) {
	const op = "ProductViewsView.Views"

	val, err := v.gv.Get(productID)
	if err != nil {
		return 0, opErr(err, op)
	}
	if val == nil {
		return 0, nil
	}

	count, ok := val.(ViewCount)
	if !ok {
		return 0, opErr(ErrInvalidValueType, op)
	}
	return int64(count), nil
}
