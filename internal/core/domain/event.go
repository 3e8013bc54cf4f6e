package domain

// Client event types produced to the analytics stream.
const (
	EventProductViewed = "product_viewed"
	EventOrderPlaced   = "order_placed"
)

type ClientEvent struct {
	Type        string
	SessionID   string
	ProductID   string
	OrderNumber string
	TotalAmount float64
	UnixTS      int64
}
