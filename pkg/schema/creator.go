package schema

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/sr"
)

// A SchemaCreator registers avro schemas in the schema registry and
// reports their ids.
type SchemaCreator struct {
	cl *sr.Client
}

func NewSchemaCreator(cl *sr.Client) SchemaCreator {
	return SchemaCreator{cl}
}

func (c SchemaCreator) DetermineID(
	ctx context.Context, subject, avroSchemaText string,
) (int, error) {
	const op = "SchemaCreator.DetermineID"

	ss, err := c.cl.CreateSchema(ctx, subject, sr.Schema{
		Schema: avroSchemaText,
		Type:   sr.TypeAvro,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return ss.ID, nil
}
