// Package tui implements the interactive order confirmation dashboard.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codguard/codguard/internal/api"
	"github.com/codguard/codguard/internal/dispatch"
	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/tui/themes"
	"github.com/codguard/codguard/internal/view"
)

// Action names shared between key handling and the bulk call router.
const (
	actionConfirm     = "confirm"
	actionCancel      = "cancel"
	actionBookPostex  = "book-with-postex"
	actionBookLeopard = "book-with-leopard"
	actionBookAuto    = "book-recommended"
)

// Mode is the current input mode of the dashboard.
type Mode int

// Input modes.
const (
	ModeNormal Mode = iota
	ModeSearch
)

// statusTabs are the server-side status pages, in tab order.
var statusTabs = []string{"all", "pending", "confirmed", "unconfirmed"}

// searchFields are the filter targets the search input cycles through.
var searchFields = []string{"customer", "phone", "tracking", "address"}

// Model is the root dashboard model.
type Model struct {
	client   *api.Client
	recorder dispatch.Recorder
	coll     *view.Collection[model.Order]
	theme    themes.Theme

	table       table.Model
	searchInput textinput.Model

	mode        Mode
	tab         int
	searchField int
	cursor      int

	stats    *model.OrderStats
	busy     map[string]bool
	rollback map[string]map[string]model.Order

	notice    string
	noticeErr bool
	loading   bool
	showHelp  bool
	width     int
	height    int
}

// New creates the dashboard model. recorder may be nil.
func New(client *api.Client, recorder dispatch.Recorder, theme themes.Theme) Model {
	columns := []table.Column{
		{Title: " ", Width: 2},
		{Title: "Order", Width: 12},
		{Title: "Customer", Width: 20},
		{Title: "Phone", Width: 14},
		{Title: "Amount", Width: 10},
		{Title: "Status", Width: 12},
		{Title: "Delivery", Width: 12},
		{Title: "Courier", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Filter by customer..."
	searchInput.CharLimit = 50

	return Model{
		client:      client,
		recorder:    recorder,
		coll:        view.NewCollection(view.OrderFields()),
		theme:       theme,
		table:       t,
		searchInput: searchInput,
		busy:        make(map[string]bool),
		rollback:    make(map[string]map[string]model.Order),
		loading:     true,
		width:       80,
		height:      24,
	}
}

// Init kicks off the first page load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadOrders(m.client, m.status()), loadStats(m.client))
}

func (m Model) status() string { return statusTabs[m.tab] }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-9, 5))
		return m, nil

	case ordersLoadedMsg:
		m.loading = false
		m.coll.SetRecords(msg.orders)
		m.clampCursor()
		m.syncTable()
		return m, nil

	case statsLoadedMsg:
		stats := msg.stats
		m.stats = &stats
		return m, nil

	case actionSettledMsg:
		return m.settleAction(msg)

	case noticeMsg:
		m.notice = msg.text
		m.noticeErr = msg.isErr
		return m, clearNoticeAfter(noticeDuration)

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case errMsg:
		m.loading = false
		m.notice = fmt.Sprintf("load failed: %v", msg.err)
		m.noticeErr = true
		return m, clearNoticeAfter(noticeDuration)

	case tea.KeyMsg:
		if m.mode == ModeSearch {
			return m.handleSearchKey(msg)
		}
		return m.handleNormalKey(msg)
	}

	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, keys.Down):
		m.cursor = min(m.cursor+1, len(m.coll.Filtered())-1)
		m.clampCursor()
		m.table.SetCursor(m.cursor)
		return m, nil

	case key.Matches(msg, keys.Up):
		m.cursor = max(m.cursor-1, 0)
		m.table.SetCursor(m.cursor)
		return m, nil

	case key.Matches(msg, keys.Toggle):
		if rec, ok := m.cursorRecord(); ok {
			m.coll.Toggle(rec.ID)
			m.syncTable()
		}
		return m, nil

	case key.Matches(msg, keys.SelectAll):
		if m.coll.AllSelected() {
			m.coll.ClearSelection()
		} else {
			m.coll.SelectAll()
		}
		m.syncTable()
		return m, nil

	case key.Matches(msg, keys.ClearSel):
		m.coll.ClearSelection()
		m.syncTable()
		return m, nil

	case key.Matches(msg, keys.Expand):
		if rec, ok := m.cursorRecord(); ok {
			m.coll.ToggleExpanded(rec.ID)
		}
		return m, nil

	case key.Matches(msg, keys.Search):
		m.mode = ModeSearch
		m.searchInput.Placeholder = "Filter by " + searchFields[m.searchField] + "..."
		m.searchInput.SetValue(m.coll.Criterion(searchFields[m.searchField]))
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Refresh):
		m.loading = true
		return m, tea.Batch(loadOrders(m.client, m.status()), loadStats(m.client))

	case key.Matches(msg, keys.Confirm):
		return m.startAction(actionConfirm)
	case key.Matches(msg, keys.Cancel):
		return m.startAction(actionCancel)
	case key.Matches(msg, keys.Postex):
		return m.startAction(actionBookPostex)
	case key.Matches(msg, keys.Leopard):
		return m.startAction(actionBookLeopard)
	case key.Matches(msg, keys.Recommend):
		return m.startAction(actionBookAuto)
	}

	switch msg.String() {
	case "1", "2", "3", "4":
		tab := int(msg.String()[0] - '1')
		if tab == m.tab {
			return m, nil
		}
		m.tab = tab
		m.cursor = 0
		m.loading = true
		m.coll.ClearSelection()
		return m, loadOrders(m.client, m.status())

	case "esc":
		m.coll.ClearCriteria()
		m.syncTable()
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.coll.SetCriterion(searchFields[m.searchField], m.searchInput.Value())
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.cursor = 0
		m.syncTable()
		return m, nil

	case "esc":
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil

	case "tab":
		m.searchField = (m.searchField + 1) % len(searchFields)
		m.searchInput.Placeholder = "Filter by " + searchFields[m.searchField] + "..."
		m.searchInput.SetValue(m.coll.Criterion(searchFields[m.searchField]))
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// startAction applies the optimistic patch and issues the single bulk call.
// Targets are the selection, or the cursor row when nothing is selected.
func (m Model) startAction(action string) (tea.Model, tea.Cmd) {
	if m.busy[action] {
		return m.withNotice(action+" already in flight", true)
	}

	ids := m.coll.Selected()
	if len(ids) == 0 {
		rec, ok := m.cursorRecord()
		if !ok {
			return m.withNotice("no orders to act on", true)
		}
		ids = []string{rec.ID}
	}

	snapshot := make(map[string]model.Order, len(ids))
	for _, id := range ids {
		rec, ok := m.coll.Get(id)
		if !ok {
			return m.withNotice("order "+id+" vanished", true)
		}
		snapshot[id] = rec
	}

	patch := actionPatch(action)
	for _, id := range ids {
		m.coll.Patch(id, patch)
	}
	m.coll.MarkPending(ids, action)
	m.busy[action] = true
	m.rollback[action] = snapshot
	m.syncTable()

	return m, runAction(m.client, m.recorder, action, ids)
}

// settleAction reconciles the collection once the bulk call returns. Success
// keeps the optimistic patch and drops the selection; failure restores every
// target from its snapshot. Failed calls are not retried.
func (m Model) settleAction(msg actionSettledMsg) (tea.Model, tea.Cmd) {
	delete(m.busy, msg.action)
	m.coll.ClearPending(msg.ids)

	snapshot := m.rollback[msg.action]
	delete(m.rollback, msg.action)

	if msg.err != nil {
		for id, prior := range snapshot {
			restored := prior
			m.coll.Patch(id, func(o *model.Order) { *o = restored })
		}
		m.syncTable()
		return m.withNotice(fmt.Sprintf("%s failed: %v", msg.action, msg.err), true)
	}

	m.coll.ClearSelection()
	m.syncTable()
	mm, cmd := m.withNotice(fmt.Sprintf("%s applied to %d order(s)", msg.action, len(msg.ids)), false)
	return mm, tea.Batch(cmd, loadStats(m.client))
}

func (m Model) withNotice(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeErr = isErr
	return m, clearNoticeAfter(noticeDuration)
}

func (m Model) cursorRecord() (model.Order, bool) {
	filtered := m.coll.Filtered()
	if m.cursor < 0 || m.cursor >= len(filtered) {
		return model.Order{}, false
	}
	return filtered[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.coll.Filtered()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.table.SetCursor(m.cursor)
}

// syncTable rebuilds the table rows from the filtered view.
func (m *Model) syncTable() {
	filtered := m.coll.Filtered()
	rows := make([]table.Row, 0, len(filtered))
	for _, o := range filtered {
		marker := " "
		switch {
		case m.coll.IsSelected(o.ID):
			marker = "✓"
		default:
			if _, pending := m.coll.PendingAction(o.ID); pending {
				marker = "…"
			}
		}
		rows = append(rows, table.Row{
			marker,
			o.OrderID,
			o.Customer,
			o.Phone,
			fmt.Sprintf("%.0f", o.TotalPrice),
			o.Status.Badge().Text,
			o.DeliveryState.Badge().Text,
			string(o.AssignedCourier),
		})
	}
	m.table.SetRows(rows)
	m.clampCursor()
}
