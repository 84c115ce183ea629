package model

import (
	"encoding/json"
	"testing"
)

func TestOrder_UnmarshalAliases(t *testing.T) {
	raw := `{
		"_id": "683f2",
		"order_id": "O1001",
		"customer": "Huzaifa Paracha",
		"customer_phone": "3361919915",
		"total_price": 2500,
		"status": "unconfirmed",
		"tracking_id": "293350800016940",
		"date": "2025-05-20",
		"children": [
			{"type": "whatsapp", "content": "Please confirm your order", "timestamp": "2025-05-20T10:30:00", "status": "sent"}
		]
	}`

	var o Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if o.ID != "683f2" {
		t.Errorf("ID = %q, want _id alias", o.ID)
	}
	if o.Customer != "Huzaifa Paracha" {
		t.Errorf("Customer = %q, want customer alias", o.Customer)
	}
	if o.Tracking != "293350800016940" {
		t.Errorf("Tracking = %q, want tracking_id alias", o.Tracking)
	}
	if o.CreatedAt != "2025-05-20" {
		t.Errorf("CreatedAt = %q, want date alias", o.CreatedAt)
	}
	if len(o.History) != 1 || o.History[0].Type != "whatsapp" {
		t.Errorf("History = %+v, want one whatsapp entry", o.History)
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range ValidOrderStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("shipped").Valid() {
		t.Error("delivery labels are not order statuses")
	}
}

func TestBadges(t *testing.T) {
	tests := []struct {
		name  string
		badge Badge
		text  string
		tone  Tone
	}{
		{name: "confirmed order", badge: OrderConfirmed.Badge(), text: "Confirmed", tone: ToneSuccess},
		{name: "unconfirmed order", badge: OrderUnconfirmed.Badge(), text: "Unconfirmed", tone: ToneDanger},
		{name: "delivery in transit", badge: DeliveryInTransit.Badge(), text: "In Transit", tone: ToneInfo},
		{name: "courier unassigned", badge: Courier("").Badge(), text: "Unassigned", tone: TonePending},
		{name: "courier label folds case", badge: DeliveryBadge("Delivered"), text: "Delivered", tone: ToneSuccess},
		{name: "unknown courier label", badge: DeliveryBadge("lost_in_warehouse"), text: "lost_in_warehouse", tone: ToneNeutral},
		{name: "severe risk rate", badge: RiskBadge(82), text: "Severe", tone: ToneDanger},
		{name: "low risk rate", badge: RiskBadge(12), text: "Low", tone: ToneSuccess},
		{name: "unknown customer status", badge: CustomerStatus("ghosted").Badge(), text: "ghosted", tone: ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.badge.Text != tt.text || tt.badge.Tone != tt.tone {
				t.Errorf("badge = %+v, want {%s %d}", tt.badge, tt.text, tt.tone)
			}
		})
	}
}

func TestRiskOrderStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from RiskOrderStatus
		to   RiskOrderStatus
		want bool
	}{
		{RiskNew, RiskAnalyzing, true},
		{RiskAnalyzing, RiskHighRisk, true},
		{RiskHighRisk, RiskPaymentRequested, true},
		{RiskPaymentRequested, RiskPaymentReceived, true},
		{RiskPaymentReceived, RiskProcessing, true},
		{RiskNew, RiskCompleted, false},
		{RiskCompleted, RiskNew, false},
		{RiskReview, RiskReview, true},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
