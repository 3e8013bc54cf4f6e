package kafka

import (
	"context"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
	"github.com/chronolux/storefront/pkg/schema"
)

var _ port.EventsProducer = (*ClientEventsProducer)(nil)

// A ClientEventsProducer publishes storefront client events to the
// analytics stream. Records are keyed by product id when present so
// per-product processors see an ordered stream, otherwise by session.
type ClientEventsProducer struct {
	cl       ProducerClient
	encoder  Encoder
	opPrefix string
}

func NewClientEventsProducer(opts ...ProducerOpt) (ClientEventsProducer, error) {
	const op = "NewClientEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ClientEventsProducer{}, opErr(err, op)
		}
	}

	return ClientEventsProducer{
		cl:       options.cl,
		encoder:  options.encoder,
		opPrefix: "ClientEventsProducer",
	}, nil
}

func (p ClientEventsProducer) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p ClientEventsProducer) ProduceEvent(
	ctx context.Context, e domain.ClientEvent,
) error {
	const op = "ProduceEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(e)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	return nil
}

func (p ClientEventsProducer) createRecord(
	e domain.ClientEvent,
) (*kgo.Record, error) {
	const op = "createRecord"

	s := p.toSchema(e)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, p.opPrefix, op)
	}

	key := s.ProductID
	if key == "" {
		key = s.SessionID
	}
	return &kgo.Record{Key: []byte(key), Value: b}, nil
}

func (ClientEventsProducer) toSchema(e domain.ClientEvent) (s schema.ClientEventV1) {
	s.EventType = e.Type
	s.SessionID = e.SessionID
	s.ProductID = e.ProductID
	s.OrderNumber = e.OrderNumber
	s.TotalAmount = e.TotalAmount
	s.UnixTS = e.UnixTS
	return
}
