// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jiminbae/minwon-console/lib/complaint"
	"github.com/jiminbae/minwon-console/lib/complaintstore"
	"github.com/jiminbae/minwon-console/lib/paginate"
	"github.com/jiminbae/minwon-console/lib/tui"
)

// Tab identifies which view is active.
type Tab int

const (
	// TabDashboard shows aggregate counts and recent arrivals.
	TabDashboard Tab = iota
	// TabComplaints shows the paginated list with the detail pane.
	TabComplaints
)

// FocusRegion identifies where keyboard input routes.
type FocusRegion int

const (
	// FocusList means navigation keys move the complaint list cursor.
	FocusList FocusRegion = iota
	// FocusDetail means navigation keys scroll the detail pane.
	FocusDetail
	// FocusQuickFilter means keystrokes go to the fuzzy filter input.
	FocusQuickFilter
	// FocusSearchInput means keystrokes go to the structured search
	// input (author substring / ID prefix).
	FocusSearchInput
	// FocusDateInput means keystrokes go to the date range input.
	FocusDateInput
	// FocusDropdown means a dropdown overlay (filter or edit) is
	// active. All keyboard input routes to the dropdown until the
	// user selects an option or dismisses it.
	FocusDropdown
	// FocusReplyModal means the reply text modal of the edit flow is
	// active. Ctrl+D submits, Escape skips the reply.
	FocusReplyModal
)

// Dropdown field identifiers. The Field on the active dropdown tells
// handleDropdownSelect what the selection means.
const (
	dropdownFieldStatusFilter   = "status-filter"
	dropdownFieldCategoryFilter = "category-filter"
	dropdownFieldEditStatus     = "edit-status"
	dropdownFieldEditDept       = "edit-dept"
)

// anyFilterValue is the dropdown sentinel for "no constraint".
const anyFilterValue = ""

// noticeFadeMsg clears a transient status bar notice.
type noticeFadeMsg struct{}

// noticeFadeDelay is how long commit results and similar notices stay
// visible in the status bar.
const noticeFadeDelay = 4 * time.Second

// heatTickMsg drives the post-commit glow animation. While any rows
// are hot, a new tick is scheduled after each one.
type heatTickMsg struct{}

// Options carries the presentation parameters and the request
// timeout. Zero values fall back to the established defaults.
type Options struct {
	PageSize       int
	PageGroupSize  int
	RecentRows     int
	RequestTimeout time.Duration
}

func (options Options) withDefaults() Options {
	if options.PageSize <= 0 {
		options.PageSize = 8
	}
	if options.PageGroupSize <= 0 {
		options.PageGroupSize = paginate.DefaultGroupSize
	}
	if options.RecentRows <= 0 {
		options.RecentRows = 7
	}
	if options.RequestTimeout <= 0 {
		options.RequestTimeout = 15 * time.Second
	}
	return options
}

// Model is the top-level bubbletea model for the complaint console.
// It owns the store and is its only writer; every mutation flows
// through the update loop.
type Model struct {
	source    Source
	committer Committer // Nil when the source is read-only.
	store     *complaintstore.Store
	options   Options

	theme Theme
	keys  KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	activeTab Tab

	// Filters. The structured filter set projects the store; the
	// quick filter narrows the projection fuzzily on top.
	filters     complaintstore.FilterSet
	quickFilter QuickFilterModel
	searchInput InputModel
	dateInput   InputModel

	// Projection state. entries is the filtered, quick-filtered
	// collection; pageRows is the slice for the current page.
	entries    []QuickFilterEntry
	totalPages int
	page       int
	pageRows   []QuickFilterEntry
	cursor     int // Index within pageRows.
	selectedID string

	// Two-pane layout.
	focusRegion FocusRegion
	priorFocus  FocusRegion // Saved focus when entering an input.
	splitRatio  float64
	detailPane  DetailPane

	// Per-session acknowledgements of flagged complaints. Once the
	// operator reveals a complaint it stays revealed until the
	// program exits; a reload does not clear it.
	revealed map[string]bool

	// Edit flow state. Only reachable when committer is non-nil.
	activeDropdown *DropdownOverlay
	edit           *editState
	replyModal     *TextModal
	commitBusy     bool // True while a commit is in flight.

	// Status bar notice (log records, commit results, load errors).
	notice      string
	noticeLevel slog.Level

	// Reload state.
	loading bool

	// Post-commit glow.
	heatTracker *HeatTracker
	tickRunning bool
}

// NewModel creates a Model connected to the given complaint source.
// The edit flow is enabled only when the source also implements
// [Committer].
func NewModel(source Source, options Options) Model {
	committer, _ := source.(Committer)
	model := Model{
		source:      source,
		committer:   committer,
		store:       complaintstore.NewStore(),
		options:     options.withDefaults(),
		theme:       DefaultTheme,
		keys:        DefaultKeyMap,
		activeTab:   TabDashboard,
		page:        1,
		splitRatio:  0.55,
		revealed:    make(map[string]bool),
		heatTracker: NewHeatTracker(),
		loading:     true,
	}
	model.detailPane = NewDetailPane(model.theme)
	model.searchInput.Prompt = "search (author or complaint no.): "
	model.dateInput.Prompt = "date range (YYYY-MM-DD..YYYY-MM-DD): "
	return model
}

// Store exposes the model's record store, primarily for tests.
func (model *Model) Store() *complaintstore.Store {
	return model.store
}

// Init implements tea.Model: fetch the initial collection.
func (model Model) Init() tea.Cmd {
	return fetchRecordsCmd(model.source, model.options.RequestTimeout)
}

// Update implements tea.Model. Routes keyboard events based on the
// current focus region and handles asynchronous results.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch model.focusRegion {
		case FocusQuickFilter:
			return model.handleQuickFilterKeys(message)
		case FocusSearchInput:
			return model.handleSearchInputKeys(message)
		case FocusDateInput:
			return model.handleDateInputKeys(message)
		case FocusDropdown:
			return model.handleDropdownKeys(message)
		case FocusReplyModal:
			return model.handleReplyModalKeys(message)
		}
		return model.handleMainKeys(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.updatePaneSizes()
		model.refreshProjection()

	case recordsLoadedMsg:
		model.loading = false
		if message.err != nil {
			return model.showNotice("load failed: "+message.err.Error(), slog.LevelError)
		}
		model.store.Load(message.records)
		model.refreshProjection()
		return model.showNotice(fmt.Sprintf("loaded %d complaints", model.store.Len()), slog.LevelInfo)

	case commitResultMsg:
		return model.handleCommitResult(message)

	case logRecordMsg:
		model.notice = message.Summary
		model.noticeLevel = message.Level
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return noticeFadeMsg{}
		})

	case noticeFadeMsg:
		model.notice = ""

	case heatTickMsg:
		return model.handleHeatTick()
	}
	return model, nil
}

// showNotice sets a transient status bar notice and schedules its
// fade.
func (model Model) showNotice(text string, level slog.Level) (tea.Model, tea.Cmd) {
	model.notice = text
	model.noticeLevel = level
	return model, tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

// handleMainKeys processes keys when no input or overlay has focus.
func (model Model) handleMainKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.TabDashboard):
		model.activeTab = TabDashboard

	case key.Matches(message, model.keys.TabComplaints):
		model.activeTab = TabComplaints

	case key.Matches(message, model.keys.Reload):
		if model.loading {
			return model, nil
		}
		model.loading = true
		return model, fetchRecordsCmd(model.source, model.options.RequestTimeout)

	case key.Matches(message, model.keys.FocusToggle):
		if model.activeTab != TabComplaints {
			return model, nil
		}
		if model.focusRegion == FocusList {
			model.focusRegion = FocusDetail
		} else {
			model.focusRegion = FocusList
		}

	case key.Matches(message, model.keys.QuickFilter):
		if model.activeTab != TabComplaints {
			return model, nil
		}
		model.priorFocus = model.focusRegion
		model.focusRegion = FocusQuickFilter
		model.quickFilter.Active = true

	case key.Matches(message, model.keys.SearchFilter):
		if model.activeTab != TabComplaints {
			return model, nil
		}
		model.priorFocus = model.focusRegion
		model.focusRegion = FocusSearchInput
		model.searchInput.Active = true
		model.searchInput.Input = model.filters.Search

	case key.Matches(message, model.keys.DateFilter):
		if model.activeTab != TabComplaints {
			return model, nil
		}
		model.priorFocus = model.focusRegion
		model.focusRegion = FocusDateInput
		model.dateInput.Active = true
		model.dateInput.Input = formatDateRange(model.filters.DateFrom, model.filters.DateTo)

	case key.Matches(message, model.keys.StatusFilter):
		if model.activeTab != TabComplaints {
			return model, nil
		}
		model.openFilterDropdown(dropdownFieldStatusFilter)

	case key.Matches(message, model.keys.CategoryFilter):
		if model.activeTab != TabComplaints {
			return model, nil
		}
		model.openFilterDropdown(dropdownFieldCategoryFilter)

	case key.Matches(message, model.keys.ClearFilters):
		if model.filters.IsZero() && model.quickFilter.Input == "" {
			return model, nil
		}
		model.filters = complaintstore.FilterSet{}
		model.quickFilter.Clear()
		model.setPage(1)
		model.refreshProjection()

	case key.Matches(message, model.keys.Edit):
		return model.startEdit()

	case key.Matches(message, model.keys.Reveal):
		model.revealSelected()

	default:
		if model.activeTab != TabComplaints {
			return model, nil
		}
		if model.focusRegion == FocusList {
			model.handleListKeys(message)
		} else {
			model.handleDetailKeys(message)
		}
	}
	return model, nil
}

// handleListKeys handles navigation within the complaint list.
func (model *Model) handleListKeys(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
			model.syncSelection()
		}

	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.pageRows)-1 {
			model.cursor++
			model.syncSelection()
		}

	case key.Matches(message, model.keys.Home):
		model.cursor = 0
		model.syncSelection()

	case key.Matches(message, model.keys.End):
		if len(model.pageRows) > 0 {
			model.cursor = len(model.pageRows) - 1
			model.syncSelection()
		}

	case key.Matches(message, model.keys.PreviousPage):
		model.setPage(model.page - 1)
		model.refreshProjection()

	case key.Matches(message, model.keys.NextPage):
		model.setPage(model.page + 1)
		model.refreshProjection()

	case key.Matches(message, model.keys.PreviousWindow):
		model.setPage(model.page - model.options.PageGroupSize)
		model.refreshProjection()

	case key.Matches(message, model.keys.NextWindow):
		model.setPage(model.page + model.options.PageGroupSize)
		model.refreshProjection()
	}
}

// handleDetailKeys handles scrolling within the detail pane.
func (model *Model) handleDetailKeys(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Up):
		model.detailPane.ScrollUp(1)
	case key.Matches(message, model.keys.Down):
		model.detailPane.ScrollDown(1)
	case key.Matches(message, model.keys.PageUp):
		model.detailPane.ScrollUp(model.visibleHeight() / 2)
	case key.Matches(message, model.keys.PageDown):
		model.detailPane.ScrollDown(model.visibleHeight() / 2)
	case key.Matches(message, model.keys.Home):
		model.detailPane.ScrollTop()
	case key.Matches(message, model.keys.End):
		model.detailPane.ScrollBottom()
	}
}

// handleQuickFilterKeys routes input while the fuzzy filter is
// active. Enter confirms and returns focus to the list; Escape clears.
func (model Model) handleQuickFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.quickFilter.Clear()
		model.focusRegion = model.priorFocus
		model.setPage(1)
		model.refreshProjection()

	case tea.KeyEnter:
		model.quickFilter.Active = false
		model.focusRegion = model.priorFocus

	case tea.KeyBackspace:
		if model.quickFilter.HandleBackspace() {
			model.setPage(1)
			model.refreshProjection()
		}

	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			model.quickFilter.HandleRune(character)
		}
		model.setPage(1)
		model.refreshProjection()
	}
	return model, nil
}

// handleSearchInputKeys routes input for the structured search query.
// The filter applies on Enter, not per keystroke: the projection is
// deliberate, unlike the quick filter's live narrowing.
func (model Model) handleSearchInputKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.searchInput.Clear()
		model.focusRegion = model.priorFocus

	case tea.KeyEnter:
		model.filters.Search = strings.TrimSpace(model.searchInput.Input)
		model.searchInput.Clear()
		model.focusRegion = model.priorFocus
		model.setPage(1)
		model.refreshProjection()

	case tea.KeyBackspace:
		model.searchInput.HandleBackspace()

	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			model.searchInput.HandleRune(character)
		}
	}
	return model, nil
}

// handleDateInputKeys routes input for the date range. The range is
// parsed on Enter; a malformed range leaves the filters unchanged and
// reports in the status bar.
func (model Model) handleDateInputKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.dateInput.Clear()
		model.focusRegion = model.priorFocus

	case tea.KeyEnter:
		from, to, err := parseDateRange(model.dateInput.Input)
		model.dateInput.Clear()
		model.focusRegion = model.priorFocus
		if err != nil {
			return model.showNotice(err.Error(), slog.LevelWarn)
		}
		model.filters.DateFrom = from
		model.filters.DateTo = to
		model.setPage(1)
		model.refreshProjection()

	case tea.KeyBackspace:
		model.dateInput.HandleBackspace()

	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			model.dateInput.HandleRune(character)
		}
	}
	return model, nil
}

// formatDateRange renders an existing date filter back into the
// input syntax for editing.
func formatDateRange(from, to string) string {
	if from == "" && to == "" {
		return ""
	}
	return from + ".." + to
}

// parseDateRange parses "FROM..TO" where either side may be empty.
// A single date (no "..") constrains both ends.
func parseDateRange(input string) (from, to string, err error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", "", nil
	}
	if !strings.Contains(trimmed, "..") {
		if !validDate(trimmed) {
			return "", "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", trimmed)
		}
		return trimmed, trimmed, nil
	}
	parts := strings.SplitN(trimmed, "..", 2)
	from = strings.TrimSpace(parts[0])
	to = strings.TrimSpace(parts[1])
	if from != "" && !validDate(from) {
		return "", "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", from)
	}
	if to != "" && !validDate(to) {
		return "", "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", to)
	}
	return from, to, nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// openFilterDropdown opens the status or category filter dropdown,
// anchored under the header line.
func (model *Model) openFilterDropdown(field string) {
	var options []DropdownOption
	switch field {
	case dropdownFieldStatusFilter:
		options = append(options, DropdownOption{Label: "(any status)", Value: anyFilterValue})
		for _, status := range complaint.Statuses {
			options = append(options, DropdownOption{Label: status.Label(), Value: string(status)})
		}
	case dropdownFieldCategoryFilter:
		options = append(options, DropdownOption{Label: "(any category)", Value: anyFilterValue})
		for _, category := range complaint.Categories {
			options = append(options, DropdownOption{Label: complaint.CategoryLabel(category), Value: category})
		}
	}

	model.activeDropdown = &DropdownOverlay{
		Options: options,
		Field:   field,
		AnchorX: 2,
		AnchorY: 1,
	}
	model.priorFocus = model.focusRegion
	model.focusRegion = FocusDropdown
}

// handleDropdownKeys routes input while a dropdown overlay is active.
func (model Model) handleDropdownKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.activeDropdown == nil {
		model.focusRegion = FocusList
		return model, nil
	}

	switch message.Type {
	case tea.KeyEscape:
		model.dismissDropdown()

	case tea.KeyUp:
		model.activeDropdown.MoveUp()
	case tea.KeyDown:
		model.activeDropdown.MoveDown()

	case tea.KeyEnter:
		selected := model.activeDropdown.Selected()
		field := model.activeDropdown.Field
		return model.applyDropdownSelection(field, selected)

	case tea.KeyRunes:
		switch string(message.Runes) {
		case "k":
			model.activeDropdown.MoveUp()
		case "j":
			model.activeDropdown.MoveDown()
		case "q":
			model.dismissDropdown()
		}
	}
	return model, nil
}

func (model *Model) dismissDropdown() {
	model.activeDropdown = nil
	model.edit = nil
	model.focusRegion = model.priorFocus
}

// applyDropdownSelection dispatches on the dropdown's field: filter
// dropdowns update the filter set; edit dropdowns advance the wizard.
func (model Model) applyDropdownSelection(field string, selected DropdownOption) (tea.Model, tea.Cmd) {
	switch field {
	case dropdownFieldStatusFilter:
		model.activeDropdown = nil
		model.focusRegion = model.priorFocus
		model.filters.Status = complaint.Status(selected.Value)
		model.setPage(1)
		model.refreshProjection()

	case dropdownFieldCategoryFilter:
		model.activeDropdown = nil
		model.focusRegion = model.priorFocus
		model.filters.Category = selected.Value
		model.setPage(1)
		model.refreshProjection()

	case dropdownFieldEditStatus:
		if model.edit == nil {
			model.dismissDropdown()
			return model, nil
		}
		model.edit.status = complaint.Status(selected.Value)
		model.edit.stage = editStageDept
		model.openEditDeptDropdown()

	case dropdownFieldEditDept:
		if model.edit == nil {
			model.dismissDropdown()
			return model, nil
		}
		model.edit.dept = selected.Value
		if err := ValidateEdit(model.edit.status, model.edit.dept); err != nil {
			model.dismissDropdown()
			return model.showNotice(err.Error(), slog.LevelWarn)
		}
		model.activeDropdown = nil
		model.edit.stage = editStageReply
		modal := NewTextModal("Reply to complaint "+model.edit.recordID+" (optional)", model.theme)
		model.replyModal = &modal
		model.focusRegion = FocusReplyModal
	}
	return model, nil
}

// startEdit begins the edit flow for the selected complaint: status
// dropdown, then department dropdown, then the optional reply.
func (model Model) startEdit() (tea.Model, tea.Cmd) {
	if model.activeTab != TabComplaints {
		return model, nil
	}
	if model.committer == nil {
		return model.showNotice("read-only source: edits disabled", slog.LevelWarn)
	}
	if model.commitBusy {
		return model.showNotice("an edit is already in flight", slog.LevelWarn)
	}
	record, ok := model.selectedRecord()
	if !ok {
		return model, nil
	}

	model.edit = &editState{
		recordID: record.ID,
		stage:    editStageStatus,
		status:   record.Status,
		dept:     record.Dept,
	}

	options := statusDropdownOptions()
	cursor := 0
	for index, option := range options {
		if option.Value == string(record.Status) {
			cursor = index
		}
	}
	model.activeDropdown = &DropdownOverlay{
		Options: options,
		Cursor:  cursor,
		Field:   dropdownFieldEditStatus,
		ItemID:  record.ID,
		AnchorX: 2,
		AnchorY: 1,
	}
	model.priorFocus = model.focusRegion
	model.focusRegion = FocusDropdown
	return model, nil
}

// openEditDeptDropdown replaces the status dropdown with the
// department dropdown, preselecting the record's current department.
func (model *Model) openEditDeptDropdown() {
	options := deptDropdownOptions()
	cursor := 0
	for index, option := range options {
		if option.Value == model.edit.dept {
			cursor = index
		}
	}
	model.activeDropdown = &DropdownOverlay{
		Options: options,
		Cursor:  cursor,
		Field:   dropdownFieldEditDept,
		ItemID:  model.edit.recordID,
		AnchorX: 2,
		AnchorY: 1,
	}
}

// handleReplyModalKeys routes input while the reply modal is active.
// Ctrl+D submits the edit with the reply; Escape submits without one.
func (model Model) handleReplyModalKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.replyModal == nil || model.edit == nil {
		model.focusRegion = FocusList
		return model, nil
	}

	switch message.Type {
	case tea.KeyCtrlD:
		reply := strings.TrimSpace(model.replyModal.Value())
		return model.submitEdit(reply)

	case tea.KeyEscape:
		return model.submitEdit("")

	default:
		model.replyModal.Update(message)
	}
	return model, nil
}

// submitEdit sends the accumulated edit to the service. The store is
// untouched until the commit succeeds.
func (model Model) submitEdit(reply string) (tea.Model, tea.Cmd) {
	edit := model.edit
	model.replyModal = nil
	model.edit = nil
	model.focusRegion = model.priorFocus
	model.commitBusy = true

	return model, commitEditCmd(
		model.committer, model.options.RequestTimeout,
		edit.recordID, edit.status, edit.dept, reply,
	)
}

// handleCommitResult applies a confirmed edit to the store, or
// surfaces the failure. Failed commits leave the store exactly as it
// was.
func (model Model) handleCommitResult(message commitResultMsg) (tea.Model, tea.Cmd) {
	model.commitBusy = false
	if message.err != nil {
		return model.showNotice("save failed: "+message.err.Error(), slog.LevelError)
	}

	model.store.ApplyEdit(message.recordID, message.status, message.dept)
	model.heatTracker.Ignite(message.recordID, time.Now())
	model.refreshProjection()

	resultModel, noticeCmd := model.showNotice("saved complaint "+message.recordID, slog.LevelInfo)
	model = resultModel.(Model)

	if !model.tickRunning {
		model.tickRunning = true
		return model, tea.Batch(noticeCmd, tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
			return heatTickMsg{}
		}))
	}
	return model, noticeCmd
}

// handleHeatTick re-renders while rows are glowing and stops the
// timer once everything has cooled.
func (model Model) handleHeatTick() (tea.Model, tea.Cmd) {
	if !model.heatTracker.HasHot(time.Now()) {
		model.tickRunning = false
		return model, nil
	}
	return model, tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}

// revealSelected acknowledges the selected complaint's warning and
// unmasks it for the rest of the session.
func (model *Model) revealSelected() {
	record, ok := model.selectedRecord()
	if !ok {
		return
	}
	if !record.IsDevilComplaint.Bool() && !record.IsSpamComplaint.Bool() {
		return
	}
	model.revealed[record.ID] = true
	model.syncDetailPane()
}

// selectedRecord returns the record under the cursor.
func (model *Model) selectedRecord() (complaint.Record, bool) {
	if model.cursor < 0 || model.cursor >= len(model.pageRows) {
		return complaint.Record{}, false
	}
	return model.pageRows[model.cursor].Record, true
}

// setPage clamps and sets the current page.
func (model *Model) setPage(page int) {
	model.page = paginate.Clamp(page, model.totalPages)
}

// refreshProjection recomputes the visible rows from the store:
// structured filters first, then the quick filter, then pagination.
// Cursor and selection are preserved by record ID where possible.
func (model *Model) refreshProjection() {
	projected := model.filters.Apply(model.store.All())
	model.entries = model.quickFilter.Apply(projected)

	model.totalPages = paginate.TotalPages(len(model.entries), model.options.PageSize)
	model.page = paginate.Clamp(model.page, model.totalPages)
	model.pageRows = paginate.Page(model.entries, model.options.PageSize, model.page)

	// Restore the cursor onto the previously selected record if it
	// is still on this page; otherwise clamp.
	restored := false
	if model.selectedID != "" {
		for index, entry := range model.pageRows {
			if entry.Record.ID == model.selectedID {
				model.cursor = index
				restored = true
				break
			}
		}
	}
	if !restored {
		if model.cursor >= len(model.pageRows) {
			model.cursor = len(model.pageRows) - 1
		}
		if model.cursor < 0 {
			model.cursor = 0
		}
	}

	model.syncSelection()
}

// syncSelection updates selectedID from the cursor and re-renders the
// detail pane.
func (model *Model) syncSelection() {
	if record, ok := model.selectedRecord(); ok {
		model.selectedID = record.ID
	} else {
		model.selectedID = ""
	}
	model.syncDetailPane()
}

// syncDetailPane re-renders the detail pane for the current
// selection. The record comes from the store, not the page rows, so
// the pane shows a committed edit even before the projection is
// rebuilt.
func (model *Model) syncDetailPane() {
	if model.selectedID == "" {
		model.detailPane.Clear()
		return
	}
	record, ok := model.store.Get(model.selectedID)
	if !ok {
		model.detailPane.Clear()
		return
	}
	model.detailPane.SetRecord(record, model.revealed[record.ID])
}

// updatePaneSizes recomputes the pane layout after a resize or split
// change.
func (model *Model) updatePaneSizes() {
	detailWidth := model.width - model.listWidth() - 1
	model.detailPane.SetSize(detailWidth, model.visibleHeight())
	model.syncDetailPane()
}

// listWidth returns the width of the list pane.
func (model Model) listWidth() int {
	return int(float64(model.width) * model.splitRatio)
}

// visibleHeight returns the rows available for the content area:
// total height minus header (1), strip (1), separator (1), and help
// bar (1).
func (model Model) visibleHeight() int {
	height := model.height - 4
	if height < 0 {
		return 0
	}
	return height
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	var sections []string

	// Top chrome line: an active input replaces the tab bar so the
	// layout doesn't shift.
	chrome := model.quickFilterView()
	if chrome == "" {
		chrome = model.searchInput.View(model.theme, model.width)
	}
	if chrome == "" {
		chrome = model.dateInput.View(model.theme, model.width)
	}
	if chrome == "" {
		chrome = model.renderHeader()
	}
	sections = append(sections, chrome)

	if model.activeTab == TabDashboard {
		sections = append(sections, renderDashboard(
			model.theme, model.width, model.visibleHeight()+1,
			model.store.Stats(), model.store.Recent(model.options.RecentRows),
			model.revealed))
	} else {
		listView := model.renderListPane()
		divider := model.renderDivider()
		detailView := model.detailPane.View(model.focusRegion == FocusDetail)
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, listView, divider, detailView))
		sections = append(sections, renderStrip(model.theme,
			paginate.Strip(len(model.entries), model.options.PageSize, model.page, model.options.PageGroupSize),
			model.width))
	}

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator)
	sections = append(sections, model.renderHelp())

	output := strings.Join(sections, "\n")

	if model.activeDropdown != nil {
		dropdownLines := model.activeDropdown.Render(model.theme)
		output = tui.SpliceOverlay(output, dropdownLines,
			model.activeDropdown.AnchorX, model.activeDropdown.AnchorY)
	}
	if model.replyModal != nil {
		modalLines, anchorX, anchorY := model.replyModal.Render(model.width, model.height)
		output = tui.SpliceOverlay(output, modalLines, anchorX, anchorY)
	}

	return output
}

// quickFilterView renders the quick filter bar when active or
// holding text.
func (model Model) quickFilterView() string {
	if !model.quickFilter.Active && model.quickFilter.Input == "" {
		return ""
	}

	if model.quickFilter.Active {
		style := lipgloss.NewStyle().
			Foreground(model.theme.NormalText).
			Width(model.width)
		cursor := lipgloss.NewStyle().
			Foreground(model.theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + model.quickFilter.Input + cursor)
	}

	dimStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Width(model.width)
	return dimStyle.Render(" filter: " + model.quickFilter.Input)
}

// tabDefs is the fixed list of tab definitions for the header.
var tabDefs = []struct {
	label string
	tab   Tab
}{
	{"1:Dashboard", TabDashboard},
	{"2:Complaints", TabComplaints},
}

// renderHeader renders the combined tab bar + separator as a single
// line: tab labels embedded in a horizontal rule with stats on the
// right.
//
// Example: ─── 1:Dashboard ─── 2:Complaints ─── 42 shown  12 new ─
func (model Model) renderHeader() string {
	separatorStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	inactiveStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	statsStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	sep := separatorStyle.Render("─")

	leftParts := sep + sep + sep
	cursor := 3
	for index, tabDef := range tabDefs {
		leftParts += " "
		cursor++

		if model.activeTab == tabDef.tab {
			leftParts += activeStyle.Render(tabDef.label)
		} else {
			leftParts += inactiveStyle.Render(tabDef.label)
		}
		cursor += lipgloss.Width(tabDef.label)

		leftParts += " "
		cursor++

		sepCount := 3
		if index == len(tabDefs)-1 {
			sepCount = 1
		}
		for range sepCount {
			leftParts += sep
			cursor++
		}
	}

	stats := model.store.Stats()
	statsText := fmt.Sprintf("%d shown  %d new  %d processing  %d total",
		len(model.entries),
		stats.ByStatus[complaint.StatusNew],
		stats.ByStatus[complaint.StatusProcessing],
		stats.Total)
	statsRendered := statsStyle.Render(statsText)
	statsWidth := lipgloss.Width(statsText)

	rightPortion := " " + statsRendered + " " + sep
	rightWidth := 1 + statsWidth + 1 + 1

	fillCount := model.width - cursor - rightWidth
	if fillCount < 1 {
		fillCount = 1
	}
	fill := ""
	for range fillCount {
		fill += sep
	}

	return leftParts + fill + rightPortion
}

// renderListPane renders the current page of complaint rows.
func (model Model) renderListPane() string {
	rowWidth := model.listWidth()
	renderer := NewListRenderer(model.theme, rowWidth)

	visible := model.visibleHeight()
	now := time.Now()

	var rows []string
	for index, entry := range model.pageRows {
		if index >= visible {
			break
		}
		selected := index == model.cursor && model.focusRegion == FocusList
		row := Present(entry.Record, model.revealed[entry.Record.ID])
		rendered := renderer.RenderRow(row, selected, entry.TitlePositions)

		// Post-commit glow (selection highlight takes priority).
		if !selected {
			if heat := model.heatTracker.Heat(entry.Record.ID, now); heat > 0 {
				rendered = lipgloss.NewStyle().
					Background(model.theme.HotAccentPut).
					Width(rowWidth).
					MaxWidth(rowWidth).
					Render(rendered)
			}
		}
		rows = append(rows, rendered)
	}

	if len(rows) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
		text := " No complaints match the current filters."
		if model.loading {
			text = " Loading complaints..."
		}
		rows = append(rows, emptyStyle.Render(text))
	}

	for len(rows) < visible {
		rows = append(rows, "")
	}

	return lipgloss.NewStyle().
		Width(rowWidth).
		MaxWidth(rowWidth).
		Height(visible).
		Render(strings.Join(rows, "\n"))
}

// renderDivider renders the vertical divider between list and detail.
func (model Model) renderDivider() string {
	visible := model.visibleHeight()
	dividerStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)

	lines := make([]string, visible)
	for index := range lines {
		lines[index] = "│"
	}
	return dividerStyle.Width(1).Height(visible).Render(strings.Join(lines, "\n"))
}

// renderHelp renders the bottom help bar with key hints and state.
func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	focusIndicator := "LIST"
	switch model.focusRegion {
	case FocusDetail:
		focusIndicator = "DETAIL"
	case FocusQuickFilter:
		focusIndicator = "FILTER"
	case FocusSearchInput:
		focusIndicator = "SEARCH"
	case FocusDateInput:
		focusIndicator = "DATES"
	case FocusDropdown:
		focusIndicator = "SELECT"
	case FocusReplyModal:
		focusIndicator = "REPLY"
	}
	if model.activeTab == TabDashboard {
		focusIndicator = "DASH"
	}

	var help string
	if model.activeTab == TabDashboard {
		help = fmt.Sprintf(" [%s] q quit  1/2 tabs  r reload", focusIndicator)
	} else {
		help = fmt.Sprintf(" [%s] q quit  ↑↓ navigate  ←→ pages  ]/[ jump  Tab focus  / filter  f search  s/c/d filters  Esc clear",
			focusIndicator)
		if model.committer != nil {
			help += "  e edit"
		}
		if model.totalPages > 0 {
			help += fmt.Sprintf("  page %d/%d", model.page, model.totalPages)
		}
	}

	if model.loading {
		loadingStyle := lipgloss.NewStyle().
			Foreground(model.theme.StatusColor(complaint.StatusProcessing)).
			Bold(true)
		help += "  " + loadingStyle.Render("Loading...")
	}
	if model.commitBusy {
		busyStyle := lipgloss.NewStyle().
			Foreground(model.theme.StatusColor(complaint.StatusProcessing)).
			Bold(true)
		help += "  " + busyStyle.Render("Saving...")
	}

	if model.notice != "" {
		noticeColor := model.theme.StatusColor(complaint.StatusNew)
		switch {
		case model.noticeLevel >= slog.LevelError:
			noticeColor = model.theme.WarningForeground
		case model.noticeLevel >= slog.LevelWarn:
			noticeColor = model.theme.StatusColor(complaint.StatusProcessing)
		}
		noticeStyle := lipgloss.NewStyle().Foreground(noticeColor).Bold(true)
		help += "  " + noticeStyle.Render(model.notice)
	}

	return style.Render(help)
}
