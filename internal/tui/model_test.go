package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codguard/codguard/internal/api"
	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/tui/themes"
)

func testOrders() []model.Order {
	return []model.Order{
		{ID: "1", OrderID: "ORD-001", Customer: "Huzaifa Paracha", Phone: "0300-1111111", Status: model.OrderPending},
		{ID: "2", OrderID: "ORD-002", Customer: "Sara Ahmed", Phone: "0300-2222222", Status: model.OrderPending},
		{ID: "3", OrderID: "ORD-003", Customer: "Ali Hassan", Phone: "0300-3333333", Status: model.OrderConfirmed},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(api.NewClient(api.DefaultBaseURL), nil, themes.Default)
	updated, _ := m.Update(ordersLoadedMsg{orders: testOrders()})
	loaded, ok := updated.(Model)
	require.True(t, ok)
	return loaded
}

func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestToggleSelection(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "x")
	assert.Equal(t, []string{"1"}, m.coll.Selected())

	m = press(t, m, "x")
	assert.Empty(t, m.coll.Selected())
}

func TestSelectAllCoversFilteredOnly(t *testing.T) {
	m := newTestModel(t)

	m.coll.SetCriterion("customer", "sara")
	m = press(t, m, "a")

	assert.Equal(t, []string{"2"}, m.coll.Selected())
	assert.True(t, m.coll.AllSelected())
}

func TestSelectAllTogglesOff(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "a")
	assert.True(t, m.coll.AllSelected())

	m = press(t, m, "a")
	assert.Empty(t, m.coll.Selected())
}

func TestConfirmAppliesOptimisticPatch(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "x")
	updated, cmd := m.startAction(actionConfirm)
	m = updated.(Model)

	require.NotNil(t, cmd)
	rec, ok := m.coll.Get("1")
	require.True(t, ok)
	assert.Equal(t, model.OrderConfirmed, rec.Status)

	action, pending := m.coll.PendingAction("1")
	assert.True(t, pending)
	assert.Equal(t, actionConfirm, action)
	assert.True(t, m.busy[actionConfirm])
}

func TestSettleFailureRollsBack(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "x")
	updated, _ := m.startAction(actionConfirm)
	m = updated.(Model)

	updated, _ = m.settleAction(actionSettledMsg{
		action: actionConfirm,
		ids:    []string{"1"},
		err:    errors.New("backend exploded"),
	})
	m = updated.(Model)

	rec, ok := m.coll.Get("1")
	require.True(t, ok)
	assert.Equal(t, model.OrderPending, rec.Status, "failed call must restore the prior status")

	_, pending := m.coll.PendingAction("1")
	assert.False(t, pending)
	assert.False(t, m.busy[actionConfirm])
	assert.True(t, m.noticeErr)
}

func TestSettleSuccessKeepsPatchAndClearsSelection(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "x")
	updated, _ := m.startAction(actionConfirm)
	m = updated.(Model)

	updated, _ = m.settleAction(actionSettledMsg{action: actionConfirm, ids: []string{"1"}})
	m = updated.(Model)

	rec, ok := m.coll.Get("1")
	require.True(t, ok)
	assert.Equal(t, model.OrderConfirmed, rec.Status)
	assert.Empty(t, m.coll.Selected())
	assert.False(t, m.noticeErr)
}

func TestActionInFlightBlocksRepeat(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "x")
	updated, _ := m.startAction(actionConfirm)
	m = updated.(Model)

	updated, cmd := m.startAction(actionConfirm)
	m = updated.(Model)

	assert.True(t, m.noticeErr)
	assert.NotNil(t, cmd, "notice timer still scheduled")
	rec, _ := m.coll.Get("1")
	assert.Equal(t, model.OrderConfirmed, rec.Status, "no second patch applied")
}

func TestCursorActionWithoutSelection(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.startAction(actionBookPostex)
	m = updated.(Model)

	require.NotNil(t, cmd)
	rec, ok := m.coll.Get("1")
	require.True(t, ok)
	assert.Equal(t, model.CourierPostex, rec.AssignedCourier)
	assert.Equal(t, model.DeliveryShipped, rec.DeliveryState)
}

func TestSearchSetsCriterion(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "/")
	require.Equal(t, ModeSearch, m.mode)

	for _, r := range "ali" {
		m = press(t, m, string(r))
	}
	m = press(t, m, "enter")

	assert.Equal(t, ModeNormal, m.mode)
	assert.Len(t, m.coll.Filtered(), 1)
	assert.Equal(t, "3", m.coll.Filtered()[0].ID)
}

func TestExpandToggles(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "enter")
	assert.True(t, m.coll.Expanded("1"))

	m = press(t, m, "enter")
	assert.False(t, m.coll.Expanded("1"))
}
