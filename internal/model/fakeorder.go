package model

import "encoding/json"

// FakeOrderStatus is the verification state of a suspected fake order.
type FakeOrderStatus string

// Fake-order statuses.
const (
	FakeNew                     FakeOrderStatus = "new"
	FakeChecking                FakeOrderStatus = "checking"
	FakeRequiresVerification    FakeOrderStatus = "requires_verification"
	FakePartialPaymentRequested FakeOrderStatus = "partial_payment_requested"
	FakeFlagged                 FakeOrderStatus = "flagged"
	FakeBlacklisted             FakeOrderStatus = "blacklisted"
	FakeProcessing              FakeOrderStatus = "processing"
	FakeCompleted               FakeOrderStatus = "completed"
	FakeCanceled                FakeOrderStatus = "canceled"
)

// Message is one entry of a record's message thread.
type Message struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
}

// FakeOrder is an order under fraud review.
type FakeOrder struct {
	ID                   string          `json:"id"`
	OrderID              string          `json:"order_id"`
	Customer             string          `json:"customer"`
	Phone                string          `json:"phone"`
	Address              string          `json:"address"`
	Amount               float64         `json:"amount"`
	Date                 string          `json:"date"`
	Status               FakeOrderStatus `json:"status"`
	Suspicious           bool            `json:"suspicious"`
	FlagCount            int             `json:"flag_count"`
	OrderHistory         []string        `json:"order_history,omitempty"`
	VerificationRequired bool            `json:"verification_required"`
	Messages             []Message       `json:"messages,omitempty"`
}

// RecordID implements view.Record.
func (f FakeOrder) RecordID() string { return f.ID }

// UnmarshalJSON fills alias fields the backend emits under multiple names.
func (f *FakeOrder) UnmarshalJSON(data []byte) error {
	type plain FakeOrder
	if err := json.Unmarshal(data, (*plain)(f)); err != nil {
		return err
	}
	doc, err := parseAliases(data)
	if err != nil {
		return err
	}
	if f.ID == "" {
		f.ID = doc.str("_id", "order_id")
	}
	if f.FlagCount == 0 {
		f.FlagCount = int(doc.num("flagCount"))
	}
	if !f.Suspicious {
		f.Suspicious = doc.boolean("suspicious")
	}
	if !f.VerificationRequired {
		f.VerificationRequired = doc.boolean("verificationRequired")
	}
	if len(f.OrderHistory) == 0 {
		f.OrderHistory = doc.strs("orderHistory")
	}
	return nil
}

// Badge returns the display mapping for a fake-order status.
func (s FakeOrderStatus) Badge() Badge {
	switch s {
	case FakeNew:
		return Badge{Text: "New", Tone: ToneInfo}
	case FakeChecking:
		return Badge{Text: "Checking", Tone: ToneWarning}
	case FakeRequiresVerification:
		return Badge{Text: "Needs Verification", Tone: ToneWarning}
	case FakePartialPaymentRequested:
		return Badge{Text: "Partial Payment Requested", Tone: ToneInfo}
	case FakeFlagged:
		return Badge{Text: "Flagged", Tone: ToneDanger}
	case FakeBlacklisted:
		return Badge{Text: "Blacklisted", Tone: ToneDanger}
	case FakeProcessing:
		return Badge{Text: "Processing", Tone: ToneInfo}
	case FakeCompleted:
		return Badge{Text: "Completed", Tone: ToneSuccess}
	case FakeCanceled:
		return Badge{Text: "Canceled", Tone: ToneNeutral}
	default:
		return neutralBadge(string(s))
	}
}

// fakeOrderTransitions is the workflow graph the review buttons expose. The
// backend does not enforce it, so the client validates at the dispatch
// boundary before any call goes out.
var fakeOrderTransitions = map[FakeOrderStatus][]FakeOrderStatus{
	FakeNew:                     {FakeChecking, FakeRequiresVerification, FakeCanceled},
	FakeChecking:                {FakeRequiresVerification, FakePartialPaymentRequested, FakeProcessing, FakeCanceled},
	FakeRequiresVerification:    {FakePartialPaymentRequested, FakeFlagged, FakeProcessing, FakeCanceled},
	FakePartialPaymentRequested: {FakeFlagged, FakeProcessing, FakeCanceled},
	FakeFlagged:                 {FakeBlacklisted, FakeProcessing, FakeCanceled},
	FakeProcessing:              {FakeCompleted, FakeCanceled},
	FakeBlacklisted:             {},
	FakeCompleted:               {},
	FakeCanceled:                {},
}

// Valid reports whether the status is part of the vocabulary.
func (s FakeOrderStatus) Valid() bool {
	_, ok := fakeOrderTransitions[s]
	return ok
}

// CanTransition reports whether from -> to is an allowed review transition.
// Setting the same status again is allowed so a repeated result stays
// idempotent.
func (s FakeOrderStatus) CanTransition(to FakeOrderStatus) bool {
	if s == to {
		return true
	}
	allowed, ok := fakeOrderTransitions[s]
	if !ok {
		return false
	}
	for _, v := range allowed {
		if v == to {
			return true
		}
	}
	return false
}

// FakeOrderStats is the summary returned by /fake-orders/stats/summary.
type FakeOrderStats struct {
	Total                   int `json:"total"`
	New                     int `json:"new"`
	Checking                int `json:"checking"`
	RequiresVerification    int `json:"requires_verification"`
	PartialPaymentRequested int `json:"partial_payment_requested"`
	Flagged                 int `json:"flagged"`
	Blacklisted             int `json:"blacklisted"`
	Processing              int `json:"processing"`
	Completed               int `json:"completed"`
	Canceled                int `json:"canceled"`
	Suspicious              int `json:"suspicious"`
}
