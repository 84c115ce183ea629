package model

import "encoding/json"

// OrderStatus is the confirmation state of a COD order.
type OrderStatus string

// Order statuses.
const (
	OrderPending     OrderStatus = "pending"
	OrderConfirmed   OrderStatus = "confirmed"
	OrderUnconfirmed OrderStatus = "unconfirmed"
)

// DeliveryState is the shipment progress label, independent of the
// confirmation status.
type DeliveryState string

// Delivery states.
const (
	DeliveryPending   DeliveryState = "pending"
	DeliveryShipped   DeliveryState = "shipped"
	DeliveryInTransit DeliveryState = "in_transit"
	DeliveryDelivered DeliveryState = "delivered"
	DeliveryFailed    DeliveryState = "failed"
	DeliveryReturned  DeliveryState = "returned"
)

// Courier identifies the booking partner assigned to an order.
type Courier string

// Couriers.
const (
	CourierPostex  Courier = "postex"
	CourierLeopard Courier = "leopard"
	CourierNone    Courier = "none"
)

// ConfirmationEntry is one step of an order's confirmation history
// (a WhatsApp message, a call note, a customer response).
type ConfirmationEntry struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status,omitempty"`
}

// Order is a COD order awaiting confirmation.
type Order struct {
	ID              string              `json:"id"`
	OrderID         string              `json:"order_id"`
	Tracking        string              `json:"tracking,omitempty"`
	Customer        string              `json:"customer_name"`
	Phone           string              `json:"customer_phone"`
	Email           string              `json:"customer_email"`
	Address         string              `json:"customer_address"`
	TotalPrice      float64             `json:"total_price"`
	Status          OrderStatus         `json:"status"`
	DeliveryState   DeliveryState       `json:"delivery_status,omitempty"`
	AssignedCourier Courier             `json:"assigned_courier,omitempty"`
	ProductName     string              `json:"product_name,omitempty"`
	ProductQuantity int                 `json:"product_quantity,omitempty"`
	CreatedAt       string              `json:"created_date"`
	History         []ConfirmationEntry `json:"children,omitempty"`
}

// RecordID implements view.Record.
func (o Order) RecordID() string { return o.ID }

// UnmarshalJSON fills alias fields the backend emits under multiple names.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	if err := json.Unmarshal(data, (*plain)(o)); err != nil {
		return err
	}
	doc, err := parseAliases(data)
	if err != nil {
		return err
	}
	if o.ID == "" {
		o.ID = doc.str("_id", "order_id")
	}
	if o.Tracking == "" {
		o.Tracking = doc.str("tracking_id")
	}
	if o.Customer == "" {
		o.Customer = doc.str("customer")
	}
	if o.CreatedAt == "" {
		o.CreatedAt = doc.str("date")
	}
	return nil
}

// ValidOrderStatuses is the closed set accepted by the status endpoint.
var ValidOrderStatuses = []OrderStatus{OrderPending, OrderConfirmed, OrderUnconfirmed}

// Valid reports whether the status is part of the vocabulary.
func (s OrderStatus) Valid() bool {
	for _, v := range ValidOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Badge returns the display mapping for an order status.
func (s OrderStatus) Badge() Badge {
	switch s {
	case OrderConfirmed:
		return Badge{Text: "Confirmed", Tone: ToneSuccess}
	case OrderPending:
		return Badge{Text: "Pending", Tone: ToneWarning}
	case OrderUnconfirmed:
		return Badge{Text: "Unconfirmed", Tone: ToneDanger}
	default:
		return neutralBadge(string(s))
	}
}

// Badge returns the display mapping for a delivery state.
func (s DeliveryState) Badge() Badge {
	switch s {
	case DeliveryDelivered:
		return Badge{Text: "Delivered", Tone: ToneSuccess}
	case DeliveryShipped:
		return Badge{Text: "Shipped", Tone: ToneInfo}
	case DeliveryInTransit:
		return Badge{Text: "In Transit", Tone: ToneInfo}
	case DeliveryPending:
		return Badge{Text: "Pending", Tone: TonePending}
	case DeliveryFailed:
		return Badge{Text: "Failed", Tone: ToneDanger}
	case DeliveryReturned:
		return Badge{Text: "Returned", Tone: ToneDanger}
	default:
		return neutralBadge(string(s))
	}
}

// OrderStats is the summary returned by /orders/stats/summary.
type OrderStats struct {
	Confirmed   int `json:"confirmed"`
	Pending     int `json:"pending"`
	Unconfirmed int `json:"unconfirmed"`
	Total       int `json:"total"`
}
