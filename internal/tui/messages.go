package tui

import (
	"github.com/codguard/codguard/internal/model"
)

// ordersLoadedMsg carries a fresh page of orders from the backend.
type ordersLoadedMsg struct {
	orders []model.Order
}

// statsLoadedMsg carries refreshed order counters.
type statsLoadedMsg struct {
	stats model.OrderStats
}

// actionSettledMsg reports the outcome of a bulk action call.
type actionSettledMsg struct {
	action string
	ids    []string
	err    error
}

// noticeMsg shows a transient message in the footer banner.
type noticeMsg struct {
	text  string
	isErr bool
}

// clearNoticeMsg hides the footer banner.
type clearNoticeMsg struct{}

// errMsg reports a load failure.
type errMsg struct {
	err error
}
