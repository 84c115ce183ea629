package model

import (
	"encoding/json"
	"testing"
)

func TestFakeOrderStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from FakeOrderStatus
		to   FakeOrderStatus
		want bool
	}{
		{name: "new to checking", from: FakeNew, to: FakeChecking, want: true},
		{name: "new to requires_verification", from: FakeNew, to: FakeRequiresVerification, want: true},
		{name: "new straight to blacklisted", from: FakeNew, to: FakeBlacklisted, want: false},
		{name: "requires_verification to partial payment", from: FakeRequiresVerification, to: FakePartialPaymentRequested, want: true},
		{name: "partial payment to flagged", from: FakePartialPaymentRequested, to: FakeFlagged, want: true},
		{name: "flagged to blacklisted", from: FakeFlagged, to: FakeBlacklisted, want: true},
		{name: "flagged to processing", from: FakeFlagged, to: FakeProcessing, want: true},
		{name: "processing to completed", from: FakeProcessing, to: FakeCompleted, want: true},
		{name: "blacklisted is terminal", from: FakeBlacklisted, to: FakeProcessing, want: false},
		{name: "completed is terminal", from: FakeCompleted, to: FakeCanceled, want: false},
		{name: "same status is idempotent", from: FakeChecking, to: FakeChecking, want: true},
		{name: "unknown source", from: FakeOrderStatus("weird"), to: FakeChecking, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestFakeOrderStatus_BadgeFallback(t *testing.T) {
	badge := FakeOrderStatus("totally_unknown_status").Badge()
	if badge.Tone != ToneNeutral {
		t.Errorf("unknown status tone = %v, want ToneNeutral", badge.Tone)
	}
	if badge.Text != "totally_unknown_status" {
		t.Errorf("unknown status text = %q, want raw value", badge.Text)
	}

	empty := FakeOrderStatus("").Badge()
	if empty.Text != "unknown" || empty.Tone != ToneNeutral {
		t.Errorf("empty status badge = %+v, want generic unknown", empty)
	}
}

func TestFakeOrder_UnmarshalAliases(t *testing.T) {
	raw := `{
		"_id": "F9",
		"order_id": "ORD-9",
		"customer": "Sara Ahmed",
		"phone": "3112345678",
		"amount": 2800,
		"status": "flagged",
		"flagCount": 3,
		"suspicious": true,
		"orderHistory": ["2 returned parcels"],
		"verificationRequired": true
	}`

	var fo FakeOrder
	if err := json.Unmarshal([]byte(raw), &fo); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if fo.ID != "F9" {
		t.Errorf("ID = %q, want _id alias F9", fo.ID)
	}
	if fo.FlagCount != 3 {
		t.Errorf("FlagCount = %d, want camelCase alias 3", fo.FlagCount)
	}
	if !fo.Suspicious || !fo.VerificationRequired {
		t.Errorf("boolean aliases not resolved: %+v", fo)
	}
	if len(fo.OrderHistory) != 1 {
		t.Errorf("OrderHistory = %v, want camelCase alias list", fo.OrderHistory)
	}

	// Canonical snake_case keys win when both shapes are present.
	both := `{"id": "A", "_id": "B", "flag_count": 2, "flagCount": 5, "status": "new"}`
	fo = FakeOrder{}
	if err := json.Unmarshal([]byte(both), &fo); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fo.ID != "A" || fo.FlagCount != 2 {
		t.Errorf("canonical keys lost to aliases: id=%q flag_count=%d", fo.ID, fo.FlagCount)
	}
}
