package model

import "encoding/json"

// CustomerStatus is the follow-up state of an unresponsive customer.
type CustomerStatus string

// Customer statuses.
const (
	CustomerWaiting        CustomerStatus = "waiting"
	CustomerReminderSent   CustomerStatus = "reminder_sent"
	CustomerNoResponse     CustomerStatus = "no_response"
	CustomerTagged         CustomerStatus = "tagged"
	CustomerManualFollowup CustomerStatus = "manual_followup"
)

// FlowStage is the coarser workflow phase tracked alongside the status.
type FlowStage string

// Flow stages.
const (
	StageConfirmation   FlowStage = "confirmation"
	StageReminder       FlowStage = "reminder"
	StageNoResponse     FlowStage = "no_response"
	StageCallTagged     FlowStage = "call_tagged"
	StageManualFollowup FlowStage = "manual_followup"
	StageCompleted      FlowStage = "completed"
)

// CustomerAction names an operator follow-up operation on a customer.
// The backend accepts exactly these values on the action endpoint.
type CustomerAction string

// Customer actions.
const (
	ActionSendReminder CustomerAction = "send_reminder"
	ActionCallCustomer CustomerAction = "call_customer"
	ActionMarkResolved CustomerAction = "mark_resolved"
)

// Valid reports whether the action is accepted by the backend.
func (a CustomerAction) Valid() bool {
	switch a {
	case ActionSendReminder, ActionCallCustomer, ActionMarkResolved:
		return true
	}
	return false
}

// ActionEntry is one timestamped entry of a customer's follow-up timeline.
type ActionEntry struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note,omitempty"`
	Status    string `json:"status,omitempty"`
}

// UnresponsiveCustomer is a customer whose order confirmation stalled.
type UnresponsiveCustomer struct {
	ID             string         `json:"id"`
	CustomerID     string         `json:"customer_id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	OrderNumber    string         `json:"order_number"`
	OrderDate      string         `json:"order_date"`
	OrderTotal     float64        `json:"order_total"`
	Status         CustomerStatus `json:"status"`
	LastContact    string         `json:"last_contact"`
	Stage          FlowStage      `json:"flow_stage"`
	Actions        []ActionEntry  `json:"actions"`
	DaysSinceOrder int            `json:"days_since_order"`
}

// RecordID implements view.Record.
func (c UnresponsiveCustomer) RecordID() string { return c.ID }

// UnmarshalJSON fills alias fields the backend emits under multiple names.
func (c *UnresponsiveCustomer) UnmarshalJSON(data []byte) error {
	type plain UnresponsiveCustomer
	if err := json.Unmarshal(data, (*plain)(c)); err != nil {
		return err
	}
	doc, err := parseAliases(data)
	if err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = doc.str("_id", "customer_id")
	}
	return nil
}

// Badge returns the display mapping for a customer status.
func (s CustomerStatus) Badge() Badge {
	switch s {
	case CustomerWaiting:
		return Badge{Text: "Waiting", Tone: TonePending}
	case CustomerReminderSent:
		return Badge{Text: "Reminder Sent", Tone: ToneInfo}
	case CustomerNoResponse:
		return Badge{Text: "No Response", Tone: ToneWarning}
	case CustomerTagged:
		return Badge{Text: "Tagged for Call", Tone: ToneInfo}
	case CustomerManualFollowup:
		return Badge{Text: "Manual Follow-up", Tone: ToneDanger}
	default:
		return neutralBadge(string(s))
	}
}

// Badge returns the display mapping for a flow stage.
func (s FlowStage) Badge() Badge {
	switch s {
	case StageConfirmation:
		return Badge{Text: "Confirmation", Tone: TonePending}
	case StageReminder:
		return Badge{Text: "Reminder", Tone: ToneInfo}
	case StageNoResponse:
		return Badge{Text: "No Response", Tone: ToneWarning}
	case StageCallTagged:
		return Badge{Text: "Call Tagged", Tone: ToneInfo}
	case StageManualFollowup:
		return Badge{Text: "Manual Follow-up", Tone: ToneDanger}
	case StageCompleted:
		return Badge{Text: "Completed", Tone: ToneSuccess}
	default:
		return neutralBadge(string(s))
	}
}

// ReminderRecord is one sent reminder from the follow-up history.
type ReminderRecord struct {
	ID                string  `json:"_id"`
	OrderID           string  `json:"order_id"`
	CustomerName      string  `json:"customer_name"`
	CustomerEmail     string  `json:"customer_email"`
	CustomerPhone     string  `json:"customer_phone"`
	ReminderType      string  `json:"reminder_type"`
	ReminderContent   string  `json:"reminder_content"`
	SentDate          string  `json:"sent_date"`
	SentTime          string  `json:"sent_time"`
	Status            string  `json:"status"`
	OrderTotal        float64 `json:"order_total"`
	DaysSinceReminder int     `json:"days_since_reminder"`
}

// RecordID implements view.Record.
func (r ReminderRecord) RecordID() string { return r.ID }

// ResolvedCustomer is a previously unresponsive customer whose order was
// eventually confirmed.
type ResolvedCustomer struct {
	ID               string  `json:"_id"`
	OrderID          string  `json:"order_id"`
	CustomerName     string  `json:"customer_name"`
	CustomerEmail    string  `json:"customer_email"`
	CustomerPhone    string  `json:"customer_phone"`
	CustomerAddress  string  `json:"customer_address"`
	OrderTotal       float64 `json:"order_total"`
	OrderDate        string  `json:"order_date"`
	ResolvedDate     string  `json:"resolved_date"`
	ResolvedTime     string  `json:"resolved_time"`
	ResolutionMethod string  `json:"resolution_method"`
	ResolutionNote   string  `json:"resolution_note"`
	DaysToResolve    int     `json:"days_to_resolve"`
	Status           string  `json:"status"`
}

// RecordID implements view.Record.
func (r ResolvedCustomer) RecordID() string { return r.ID }

// UnresponsiveStats is the summary returned by
// /unresponsive-customers/stats/summary.
type UnresponsiveStats struct {
	Waiting        int `json:"waiting"`
	ReminderSent   int `json:"reminder_sent"`
	NoResponse     int `json:"no_response"`
	Tagged         int `json:"tagged"`
	ManualFollowup int `json:"manual_followup"`
	Total          int `json:"total"`
}

// ReminderStats counts sent reminders over recent windows.
type ReminderStats struct {
	TotalReminders int `json:"total_reminders"`
	Today          int `json:"today"`
	ThisWeek       int `json:"this_week"`
	ThisMonth      int `json:"this_month"`
}

// ResolvedStats counts resolved customers over recent windows.
type ResolvedStats struct {
	TotalResolved int `json:"total_resolved"`
	Today         int `json:"today"`
	ThisWeek      int `json:"this_week"`
	ThisMonth     int `json:"this_month"`
}
