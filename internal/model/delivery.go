package model

import (
	"encoding/json"
	"strings"
)

// Delivery is a booked parcel tracked through a courier. Its status labels
// come from the couriers themselves and are case-inconsistent on the wire, so
// the badge lookup folds case.
type Delivery struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer_name"`
	Phone    string  `json:"customer_phone"`
	Address  string  `json:"customer_address"`
	Tracking string  `json:"tracking"`
	Merchant string  `json:"merchant"`
	Status   string  `json:"order_status"`
	Items    int     `json:"no_of_items"`
	Courier  Courier `json:"courier"`
	City     string  `json:"city"`
	Value    float64 `json:"order_value"`
	Date     string  `json:"created_date"`
}

// RecordID implements view.Record.
func (d Delivery) RecordID() string { return d.ID }

// UnmarshalJSON fills alias fields the backend emits under multiple names.
func (d *Delivery) UnmarshalJSON(data []byte) error {
	type plain Delivery
	if err := json.Unmarshal(data, (*plain)(d)); err != nil {
		return err
	}
	doc, err := parseAliases(data)
	if err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = doc.str("_id")
	}
	if d.Customer == "" {
		d.Customer = doc.str("customer")
	}
	if d.Phone == "" {
		d.Phone = doc.str("phone")
	}
	if d.Address == "" {
		d.Address = doc.str("address")
	}
	if d.Status == "" {
		d.Status = doc.str("status")
	}
	if d.Courier == "" {
		d.Courier = Courier(doc.str("assignedCourier"))
	}
	if d.Value == 0 {
		d.Value = doc.num("order_value")
	}
	if d.Items == 0 {
		d.Items = int(doc.num("items"))
	}
	return nil
}

// DeliveryBadge maps a courier status label to its display form.
func DeliveryBadge(status string) Badge {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "unbooked":
		return Badge{Text: "Unbooked", Tone: TonePending}
	case "booked":
		return Badge{Text: "Booked", Tone: ToneInfo}
	case "dispatched":
		return Badge{Text: "Dispatched", Tone: ToneInfo}
	case "in_transit", "in transit":
		return Badge{Text: "In Transit", Tone: ToneInfo}
	case "delivered":
		return Badge{Text: "Delivered", Tone: ToneSuccess}
	case "failed":
		return Badge{Text: "Failed", Tone: ToneDanger}
	case "returned":
		return Badge{Text: "Returned", Tone: ToneDanger}
	default:
		return neutralBadge(status)
	}
}

// Badge returns the display mapping for a courier assignment.
func (c Courier) Badge() Badge {
	switch c {
	case CourierPostex:
		return Badge{Text: "PostEx", Tone: ToneInfo}
	case CourierLeopard:
		return Badge{Text: "Leopard", Tone: ToneInfo}
	case CourierNone, "":
		return Badge{Text: "Unassigned", Tone: TonePending}
	default:
		return neutralBadge(string(c))
	}
}

// CourierStats is per-courier delivery performance.
type CourierStats struct {
	Courier     string  `json:"courier"`
	SuccessRate float64 `json:"successRate"`
	TotalOrders int     `json:"totalOrders"`
	AvgValue    float64 `json:"avgValue"`
}

// CityStats compares courier success rates in one city.
type CityStats struct {
	City        string  `json:"city"`
	PostexRate  float64 `json:"postexRate"`
	LeopardRate float64 `json:"leopardRate"`
}

// DeliverySummary is the rollup returned by /deliveries/stats/summary.
type DeliverySummary struct {
	TotalOrders        int                     `json:"total_orders"`
	PostexOrders       int                     `json:"postex_orders"`
	LeopardOrders      int                     `json:"leopard_orders"`
	CourierPerformance map[string]CourierStats `json:"courier_performance"`
}
