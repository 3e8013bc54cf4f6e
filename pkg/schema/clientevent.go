package schema

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "client_event",
	"fields": [
		{"name": "event_type", "type": "string"},
		{"name": "session_id", "type": "string"},
		{"name": "product_id", "type": "string", "default": ""},
		{"name": "order_number", "type": "string", "default": ""},
		{"name": "total_amount", "type": "double", "default": 0},
		{"name": "unix_ts", "type": "long"}
	]
}`

type ClientEventV1 struct {
	EventType   string  `avro:"event_type"`
	SessionID   string  `avro:"session_id"`
	ProductID   string  `avro:"product_id"`
	OrderNumber string  `avro:"order_number"`
	TotalAmount float64 `avro:"total_amount"`
	UnixTS      int64   `avro:"unix_ts"`
}
