package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/lovoo/goka"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/pkg/schema"
)

// A clientEventCodec decodes stream records into [schema.ClientEventV1].
type clientEventCodec struct {
	serde Serde
}

func newClientEventCodec(s Serde) clientEventCodec {
	return clientEventCodec{s}
}

func (c clientEventCodec) Encode(v any) ([]byte, error) {
	const op = "clientEventCodec.Encode"
	if _, ok := v.(schema.ClientEventV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c clientEventCodec) Decode(data []byte) (any, error) {
	const op = "clientEventCodec.Decode"
	var s schema.ClientEventV1
	if err := c.serde.Decode(data, &s); err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

type ViewCount int64

type ViewCountCodec struct{}

func (ViewCountCodec) Encode(v any) ([]byte, error) {
	const op = "ViewCountCodec.Encode"
	vc, ok := v.(ViewCount)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return strconv.AppendInt([]byte(nil), int64(vc), 10), nil
}

func (ViewCountCodec) Decode(data []byte) (any, error) {
	const op = "ViewCountCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return ViewCount(n), nil
}

// A ProductViewsProcessor folds product_viewed events into a
// per-product counter persisted in the group table.
type ProductViewsProcessor struct {
	gp *goka.Processor
}

func NewProductViewsProcessor(
	seedBrokers []string, stream, group string, eventSerde Serde,
) (ProductViewsProcessor, error) {
	const op = "NewProductViewsProcessor"
	p := ProductViewsProcessor{}

	gg := goka.DefineGroup(goka.Group(group),
		goka.Input(goka.Stream(stream), newClientEventCodec(eventSerde), processViewEvent),
		goka.Persist(ViewCountCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return ProductViewsProcessor{}, opErr(err, op)
	}

	p.gp = gp
	return p, nil
}

func (p ProductViewsProcessor) Run(ctx context.Context) {
	const op = "ProductViewsProcessor.Run"
	log := slog.With("op", op)

	if err := p.gp.Run(ctx); err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p ProductViewsProcessor) Close() {
	const op = "ProductViewsProcessor.Close"
	log := slog.With("op", op)

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

func processViewEvent(ctx goka.Context, msg any) {
	e, ok := msg.(schema.ClientEventV1)
	if !ok {
		return
	}
	if e.EventType != domain.EventProductViewed || e.ProductID == "" {
		return
	}

	var count ViewCount
	if v := ctx.Value(); v != nil {
		count = v.(ViewCount)
	}
	ctx.SetValue(count + 1)
}
