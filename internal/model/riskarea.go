package model

import "encoding/json"

// RiskOrderStatus is the handling state of an order placed from a
// high-risk delivery area.
type RiskOrderStatus string

// High-risk-area order statuses.
const (
	RiskNew              RiskOrderStatus = "new"
	RiskAnalyzing        RiskOrderStatus = "analyzing"
	RiskHighRisk         RiskOrderStatus = "high_risk"
	RiskPaymentRequested RiskOrderStatus = "payment_requested"
	RiskPaymentReceived  RiskOrderStatus = "payment_received"
	RiskProcessing       RiskOrderStatus = "processing"
	RiskReview           RiskOrderStatus = "review"
	RiskCompleted        RiskOrderStatus = "completed"
)

// HighRiskAreaOrder is an order escalated for advance-payment handling
// because of its delivery area.
type HighRiskAreaOrder struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	Customer    string          `json:"customer"`
	Area        string          `json:"area"`
	Address     string          `json:"address"`
	RiskRate    float64         `json:"risk_rate"`
	RiskFactors []string        `json:"risk_factors"`
	Status      RiskOrderStatus `json:"status"`
	Date        string          `json:"date"`
	Messages    []Message       `json:"messages,omitempty"`
}

// RecordID implements view.Record.
func (o HighRiskAreaOrder) RecordID() string { return o.ID }

// UnmarshalJSON fills alias fields the backend emits under multiple names.
func (o *HighRiskAreaOrder) UnmarshalJSON(data []byte) error {
	type plain HighRiskAreaOrder
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
	return nil
}

// Badge returns the display mapping for a high-risk-area status.
func (s RiskOrderStatus) Badge() Badge {
	switch s {
	case RiskNew:
		return Badge{Text: "New", Tone: ToneInfo}
	case RiskAnalyzing:
		return Badge{Text: "Analyzing", Tone: ToneWarning}
	case RiskHighRisk:
		return Badge{Text: "High Risk", Tone: ToneDanger}
	case RiskPaymentRequested:
		return Badge{Text: "Payment Requested", Tone: ToneWarning}
	case RiskPaymentReceived:
		return Badge{Text: "Payment Received", Tone: ToneSuccess}
	case RiskProcessing:
		return Badge{Text: "Processing", Tone: ToneInfo}
	case RiskReview:
		return Badge{Text: "In Review", Tone: ToneWarning}
	case RiskCompleted:
		return Badge{Text: "Completed", Tone: ToneSuccess}
	default:
		return neutralBadge(string(s))
	}
}

// RiskBadge maps a numeric risk rate to a severity badge.
func RiskBadge(rate float64) Badge {
	switch {
	case rate >= 70:
		return Badge{Text: "Severe", Tone: ToneDanger}
	case rate >= 40:
		return Badge{Text: "Elevated", Tone: ToneWarning}
	default:
		return Badge{Text: "Low", Tone: ToneSuccess}
	}
}

// riskTransitions mirrors the escalation flow the dashboard buttons expose.
var riskTransitions = map[RiskOrderStatus][]RiskOrderStatus{
	RiskNew:              {RiskAnalyzing, RiskProcessing},
	RiskAnalyzing:        {RiskHighRisk, RiskProcessing},
	RiskHighRisk:         {RiskPaymentRequested, RiskReview},
	RiskPaymentRequested: {RiskPaymentReceived, RiskReview},
	RiskPaymentReceived:  {RiskProcessing},
	RiskProcessing:       {RiskReview, RiskCompleted},
	RiskReview:           {RiskProcessing, RiskCompleted},
	RiskCompleted:        {},
}

// Valid reports whether the status is part of the vocabulary.
func (s RiskOrderStatus) Valid() bool {
	_, ok := riskTransitions[s]
	return ok
}

// CanTransition reports whether from -> to is an allowed escalation step.
func (s RiskOrderStatus) CanTransition(to RiskOrderStatus) bool {
	if s == to {
		return true
	}
	allowed, ok := riskTransitions[s]
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

// HighRiskAreaStats is the summary returned by /high-risk-areas/stats/summary.
type HighRiskAreaStats struct {
	Total            int `json:"total"`
	New              int `json:"new"`
	Analyzing        int `json:"analyzing"`
	HighRisk         int `json:"high_risk"`
	PaymentRequested int `json:"payment_requested"`
	PaymentReceived  int `json:"payment_received"`
	Processing       int `json:"processing"`
	Review           int `json:"review"`
	Completed        int `json:"completed"`
}
