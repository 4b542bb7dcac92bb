package views

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/actionlog/internal/config"
	"github.com/xolan/actionlog/internal/entry"
	"github.com/xolan/actionlog/internal/service"
	"github.com/xolan/actionlog/internal/storage"
	"github.com/xolan/actionlog/internal/store"
	"github.com/xolan/actionlog/internal/tui/ui"
)

var testNow = time.Date(2024, 1, 2, 9, 30, 0, 0, time.Local)

func testClock() time.Time {
	return testNow
}

func setupTestServices(t *testing.T) (*service.Services, string) {
	t.Helper()
	exportDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ExportDir = exportDir
	configPath := filepath.Join(t.TempDir(), "config.toml")
	return service.NewServicesWithKV(storage.NewMemoryKV(), configPath, cfg), exportDir
}

func setupTestServicesWithEntries(t *testing.T) *service.Services {
	t.Helper()
	services, _ := setupTestServices(t)
	inputs := []entry.Input{
		{Start: "2024-01-02T08:00", Stop: "2024-01-02T08:45", Action: "Standup"},
		{Start: "2024-01-02T09:00", Stop: "2024-01-02T09:15", Action: "Coffee", Comment: "a, b"},
	}
	for _, in := range inputs {
		if _, err := services.Entry.Create(service.AddInput{Input: in}, testNow); err != nil {
			t.Fatal(err)
		}
	}
	return services
}

func newTestForm(services *service.Services) FormModel {
	return NewFormModel(services, ui.DefaultStyles(), ui.DefaultKeyMap()).WithClock(testClock)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRenderRows(t *testing.T) {
	rows := []store.DisplayRow{
		{Index: 1, ShortStart: "Jan 02 08:00", ShortStop: "Jan 02 08:45", Minutes: 45, Action: "Standup"},
		{Index: 2, ShortStart: "Jan 02 09:00", ShortStop: "Jan 02 09:15", Minutes: 15, Action: "Coffee", Comment: "a, b"},
	}

	result := RenderRows(rows, ui.DefaultStyles(), RowRenderOptions{Width: 100, Cursor: 0})

	for _, want := range []string{"[1]", "[2]", "Standup", "Coffee", "a, b", "45m", "15m", "Jan 02 08:00 - Jan 02 08:45"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected %q in result, got %q", want, result)
		}
	}
}

func TestRenderRows_Empty(t *testing.T) {
	result := RenderRows(nil, ui.DefaultStyles(), RowRenderOptions{Width: 80, Cursor: -1})
	if result != "" {
		t.Errorf("expected empty result, got %q", result)
	}
}

func TestRenderRows_Limit(t *testing.T) {
	var rows []store.DisplayRow
	for i := 1; i <= 4; i++ {
		rows = append(rows, store.DisplayRow{Index: i, Action: "task"})
	}

	result := RenderRows(rows, ui.DefaultStyles(), RowRenderOptions{Width: 80, Cursor: -1, Limit: 2})

	if !strings.Contains(result, "2 earlier entries") {
		t.Errorf("expected hidden-row count in result, got %q", result)
	}
	if strings.Contains(result, "[1]") || strings.Contains(result, "[2]") {
		t.Errorf("expected only the last two rows, got %q", result)
	}
	if !strings.Contains(result, "[4]") {
		t.Errorf("expected last row in result, got %q", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"ascii", "abcdefghij", 5, "abcd…"},
		{"wide runes", "日本語テキスト", 5, "日本…"},
		{"emoji cluster kept whole", "👍🏽👍🏽👍🏽", 5, "👍🏽👍🏽…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0m"},
		{30, "30m"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := formatDuration(tt.minutes)
			if result != tt.expected {
				t.Errorf("formatDuration(%d) = %q, expected %q", tt.minutes, result, tt.expected)
			}
		})
	}
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{-15, "-15m"},
		{5, "+5m"},
		{60, "+1h"},
		{-90, "-1h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatDelta(tt.minutes); got != tt.expected {
				t.Errorf("formatDelta(%d) = %q, expected %q", tt.minutes, got, tt.expected)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		word     string
		count    int
		expected string
	}{
		{"entry", 1, "entry"},
		{"entry", 0, "entries"},
		{"entry", 2, "entries"},
		{"result", 1, "result"},
		{"result", 5, "results"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := pluralize(tt.word, tt.count)
			if result != tt.expected {
				t.Errorf("pluralize(%q, %d) = %q, expected %q", tt.word, tt.count, result, tt.expected)
			}
		})
	}
}

// Form tests

func TestNewFormModel(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)

	if got := model.Value(FieldStart); got != "2024-01-02T09:30" {
		t.Errorf("expected start prefilled with now, got %q", got)
	}
	if got := model.Value(FieldStop); got != "" {
		t.Errorf("expected empty stop, got %q", got)
	}
	if model.IsInputMode() {
		t.Error("expected form not to capture keys initially")
	}
	if model.Init() != nil {
		t.Error("expected Init to return nil")
	}
}

func TestFormModel_SaveWithKeyboard(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)

	// Move focus to the action field, edit it and save with enter
	model, _ = model.Update(runeKey("j"))
	model, _ = model.Update(runeKey("j"))
	model, _ = model.Update(runeKey("e"))
	if !model.IsInputMode() {
		t.Fatal("expected editing mode after 'e'")
	}
	model, _ = model.Update(runeKey("Tea"))
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if model.IsInputMode() {
		t.Error("expected editing to end after save")
	}
	if services.Entry.Count() != 1 {
		t.Fatalf("expected 1 entry, got %d", services.Entry.Count())
	}
	e := services.Entry.Store().Entries()[0]
	if e.Action != "Tea" {
		t.Errorf("expected action 'Tea', got %q", e.Action)
	}
	if e.Minutes != 0 {
		t.Errorf("expected 0 minutes, got %d", e.Minutes)
	}
	if cmd == nil {
		t.Fatal("expected a command after save")
	}
	if _, ok := cmd().(ui.EntriesChangedMsg); !ok {
		t.Error("expected EntriesChangedMsg after save")
	}
	if model.Value(FieldAction) != "" {
		t.Errorf("expected action cleared after save, got %q", model.Value(FieldAction))
	}
	if model.Value(FieldStart) != "2024-01-02T09:30" {
		t.Errorf("expected start kept after save, got %q", model.Value(FieldStart))
	}
	if !strings.Contains(model.Status(), "Logged: Tea") {
		t.Errorf("expected logged status, got %q", model.Status())
	}
}

func TestFormModel_SaveMissingAction(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)

	model, cmd := model.Update(runeKey("s"))

	if cmd != nil {
		t.Error("expected no command when validation fails")
	}
	if services.Entry.Count() != 0 {
		t.Errorf("expected no entries, got %d", services.Entry.Count())
	}
	if !strings.Contains(model.Status(), "Please enter an action") {
		t.Errorf("expected action prompt, got %q", model.Status())
	}
}

func TestFormModel_SaveInvalidTimestampKeepsForm(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)
	model.inputs[FieldStart].SetValue("yesterday-ish")
	model.inputs[FieldAction].SetValue("Coffee")

	model, _ = model.Update(runeKey("s"))

	if services.Entry.Count() != 0 {
		t.Errorf("expected no entries, got %d", services.Entry.Count())
	}
	if model.Value(FieldAction) != "Coffee" {
		t.Errorf("expected form values kept, got %q", model.Value(FieldAction))
	}
	if !strings.Contains(model.Status(), "invalid timestamp") {
		t.Errorf("expected timestamp error, got %q", model.Status())
	}
}

func TestFormModel_SaveSwapsReversedTimes(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)
	model.inputs[FieldStart].SetValue("2024-01-02T10:00")
	model.inputs[FieldStop].SetValue("2024-01-02T09:00")
	model.inputs[FieldAction].SetValue("Review")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries := services.Entry.Store().Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Minutes != 60 {
		t.Errorf("expected 60 minutes, got %d", entries[0].Minutes)
	}
	if model.Value(FieldStart) != "2024-01-02T09:00" {
		t.Errorf("expected swapped start kept in form, got %q", model.Value(FieldStart))
	}
}

func TestFormModel_ApplyLength(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)

	// Default presets: -15 -5 5 15 30 60
	for range 3 {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})

	if got := model.Value(FieldStop); got != "2024-01-02T09:45" {
		t.Errorf("expected stop 2024-01-02T09:45, got %q", got)
	}

	// Negative chip yields a stop before the start
	for range 5 {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	model, _ = model.Update(runeKey("+"))

	if got := model.Value(FieldStop); got != "2024-01-02T09:15" {
		t.Errorf("expected stop 2024-01-02T09:15, got %q", got)
	}
}

func TestFormModel_ApplyLengthEmptyStart(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)
	model.inputs[FieldStart].SetValue("")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})

	if got := model.Value(FieldStart); got != "2024-01-02T09:30" {
		t.Errorf("expected start defaulted to now, got %q", got)
	}
	if got := model.Value(FieldStop); got != "2024-01-02T09:15" {
		t.Errorf("expected stop 2024-01-02T09:15, got %q", got)
	}
}

func TestFormModel_ClearForm(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)
	model.inputs[FieldStart].SetValue("2024-01-01T07:00")
	model.inputs[FieldStop].SetValue("2024-01-01T08:00")
	model.inputs[FieldAction].SetValue("Walk")
	model.inputs[FieldComment].SetValue("park")

	model, _ = model.Update(runeKey("c"))

	if model.Value(FieldStart) != "2024-01-01T07:00" {
		t.Errorf("expected start kept, got %q", model.Value(FieldStart))
	}
	for _, f := range []int{FieldStop, FieldAction, FieldComment} {
		if model.Value(f) != "" {
			t.Errorf("expected field %d cleared, got %q", f, model.Value(f))
		}
	}
}

func TestFormModel_EscapeLeavesEditing(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !model.IsInputMode() {
		t.Fatal("expected editing mode after enter")
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if model.IsInputMode() {
		t.Error("expected editing to end after esc")
	}
	if services.Entry.Count() != 0 {
		t.Error("expected esc not to save")
	}
}

func TestFormModel_TabCyclesFields(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)

	model, _ = model.Update(runeKey("e"))
	for range 4 {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	if model.focus != FieldStart {
		t.Errorf("expected focus to wrap to start, got %d", model.focus)
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if model.focus != FieldComment {
		t.Errorf("expected focus on comment, got %d", model.focus)
	}
}

func TestFormModel_ClearAllConfirm(t *testing.T) {
	services := setupTestServicesWithEntries(t)
	model := newTestForm(services)

	model, _ = model.Update(runeKey("D"))
	if !model.IsInputMode() {
		t.Fatal("expected confirmation dialog")
	}
	if !strings.Contains(model.View(), "Delete ALL entries?") {
		t.Errorf("expected dialog in view, got %q", model.View())
	}

	model, cmd := model.Update(runeKey("y"))

	if model.IsInputMode() {
		t.Error("expected dialog closed")
	}
	if services.Entry.Count() != 0 {
		t.Errorf("expected collection emptied, got %d", services.Entry.Count())
	}
	if cmd == nil {
		t.Error("expected EntriesChangedMsg command")
	}
	if !strings.Contains(model.Status(), "Deleted 2 entries") {
		t.Errorf("expected deleted status, got %q", model.Status())
	}

	backups, err := services.Entry.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestFormModel_ClearAllDeny(t *testing.T) {
	services := setupTestServicesWithEntries(t)
	model := newTestForm(services)

	model, _ = model.Update(runeKey("D"))
	model, _ = model.Update(runeKey("n"))

	if services.Entry.Count() != 2 {
		t.Errorf("expected entries kept, got %d", services.Entry.Count())
	}
	if model.Status() != "Clear cancelled" {
		t.Errorf("expected cancelled status, got %q", model.Status())
	}
}

func TestFormModel_ClearAllEmpty(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)

	model, _ = model.Update(runeKey("D"))

	if model.IsInputMode() {
		t.Error("expected no dialog for an empty collection")
	}
}

func TestFormModel_ToggleDetails(t *testing.T) {
	services := setupTestServicesWithEntries(t)
	model := newTestForm(services)
	model.SetSize(100, 30)

	if strings.Contains(model.View(), "Standup") {
		t.Error("expected entries panel hidden by default")
	}

	model, cmd := model.Update(runeKey("v"))

	if !services.Entry.ShowDetails() {
		t.Error("expected details shown after toggle")
	}
	if cmd == nil {
		t.Error("expected EntriesChangedMsg command")
	}
	view := model.View()
	if !strings.Contains(view, "Standup") || !strings.Contains(view, "Coffee") {
		t.Errorf("expected entries panel in view, got %q", view)
	}

	model, _ = model.Update(runeKey("v"))
	if model.Status() != "Entries: hidden" {
		t.Errorf("expected hidden status, got %q", model.Status())
	}
}

func TestFormModel_ExportEmpty(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)

	model, cmd := model.Update(runeKey("x"))

	if cmd != nil {
		t.Error("expected no command for an empty collection")
	}
	if model.Status() != "No entries to export." {
		t.Errorf("expected empty-export status, got %q", model.Status())
	}
}

func TestFormModel_ExportCSV(t *testing.T) {
	services := setupTestServicesWithEntries(t)
	dir := services.Export.ExportLocation()
	model := newTestForm(services)

	model, cmd := model.Update(runeKey("x"))
	if cmd == nil {
		t.Fatal("expected export command")
	}
	msg := cmd()
	done, ok := msg.(exportDoneMsg)
	if !ok {
		t.Fatalf("expected exportDoneMsg, got %T", msg)
	}
	if done.err != nil {
		t.Fatalf("export failed: %v", done.err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "actionlog_20240102_093000.csv"))
	if err != nil {
		t.Fatalf("expected export file: %v", err)
	}
	want := "start,stop,length_minutes,action,comment\n" +
		"2024-01-02T08:00,2024-01-02T08:45,45,Standup,\n" +
		"2024-01-02T09:00,2024-01-02T09:15,15,Coffee,\"a, b\""
	if string(data) != want {
		t.Errorf("unexpected export content:\n%s", data)
	}

	model, _ = model.Update(done)
	if !strings.Contains(model.Status(), "Exported CSV") {
		t.Errorf("expected exported status, got %q", model.Status())
	}
}

func TestFormModel_ExportXLSX(t *testing.T) {
	services := setupTestServicesWithEntries(t)
	dir := services.Export.ExportLocation()
	model := newTestForm(services)

	_, cmd := model.Update(runeKey("X"))
	if cmd == nil {
		t.Fatal("expected export command")
	}
	if done := cmd().(exportDoneMsg); done.err != nil {
		t.Fatalf("export failed: %v", done.err)
	}
	if _, err := os.Stat(filepath.Join(dir, "actionlog_20240102_093000.xlsx")); err != nil {
		t.Errorf("expected xlsx file: %v", err)
	}
}

func TestFormModel_ShareFallsBackToExport(t *testing.T) {
	services := setupTestServicesWithEntries(t)
	dir := services.Export.ExportLocation()
	model := newTestForm(services)

	model, cmd := model.Update(runeKey("p"))
	if cmd == nil {
		t.Fatal("expected share command")
	}
	msg := cmd()
	done, ok := msg.(shareDoneMsg)
	if !ok {
		t.Fatalf("expected shareDoneMsg, got %T", msg)
	}
	if done.result.Shared {
		t.Error("expected share to fall back without a share target")
	}
	if _, err := os.Stat(filepath.Join(dir, "actionlog_20240102_093000.csv")); err != nil {
		t.Errorf("expected fallback export file: %v", err)
	}

	model, _ = model.Update(done)
	if !strings.Contains(model.Status(), "Sharing unavailable") {
		t.Errorf("expected fallback status, got %q", model.Status())
	}
}

func TestFormModel_ShareEmpty(t *testing.T) {
	services, _ := setupTestServices(t)
	model := newTestForm(services)

	model, cmd := model.Update(runeKey("p"))

	if cmd != nil {
		t.Error("expected no command for an empty collection")
	}
	if model.Status() != "No entries to share." {
		t.Errorf("expected empty-share status, got %q", model.Status())
	}
}

func TestFormModel_PersistenceFailureWarns(t *testing.T) {
	kv := storage.NewMemoryKV()
	cfg := config.DefaultConfig()
	services := service.NewServicesWithKV(kv, filepath.Join(t.TempDir(), "config.toml"), cfg)
	model := newTestForm(services)
	model.inputs[FieldAction].SetValue("Coffee")

	kv.Fail = os.ErrPermission
	model, _ = model.Update(runeKey("s"))

	if services.Entry.Count() != 1 {
		t.Errorf("expected entry kept in memory, got %d", services.Entry.Count())
	}
	if !strings.Contains(model.Status(), "in memory only") {
		t.Errorf("expected persistence warning, got %q", model.Status())
	}
}

// Entries view tests

func TestNewEntriesModel(t *testing.T) {
	services, _ := setupTestServices(t)
	model := NewEntriesModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())

	if model.services != services {
		t.Error("expected services to be set")
	}
	if model.Init() == nil {
		t.Error("expected Init to return a command")
	}
}

func TestEntriesModel_View_Empty(t *testing.T) {
	services, _ := setupTestServices(t)
	model := NewEntriesModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	model, _ = model.Update(model.Init()())

	view := model.View()
	if !strings.Contains(view, "No entries recorded") {
		t.Errorf("expected empty message, got %q", view)
	}
}

func TestEntriesModel_View_WithEntries(t *testing.T) {
	services := setupTestServicesWithEntries(t)
	model := NewEntriesModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	model.SetSize(100, 30)
	model, _ = model.Update(model.Init()())

	view := model.View()
	for _, want := range []string{"Standup", "Coffee", "Total: 1h (2 entries)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view, got %q", want, view)
		}
	}
}

func TestEntriesModel_Update_Navigation(t *testing.T) {
	services := setupTestServicesWithEntries(t)
	model := NewEntriesModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	model, _ = model.Update(model.Init()())

	model, _ = model.Update(runeKey("j"))
	if model.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", model.Cursor())
	}
	model, _ = model.Update(runeKey("j"))
	if model.Cursor() != 1 {
		t.Errorf("expected cursor to stay at 1, got %d", model.Cursor())
	}
	model, _ = model.Update(runeKey("k"))
	if model.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", model.Cursor())
	}
}

func TestEntriesModel_ShowComment(t *testing.T) {
	services := setupTestServicesWithEntries(t)
	model := NewEntriesModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	model, _ = model.Update(model.Init()())

	// First row has no comment
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if model.IsInputMode() {
		t.Error("expected no comment dialog for a row without comment")
	}

	model, _ = model.Update(runeKey("j"))
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !model.IsInputMode() {
		t.Fatal("expected comment dialog")
	}
	if !strings.Contains(model.View(), "a, b") {
		t.Errorf("expected comment in view, got %q", model.View())
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if model.IsInputMode() {
		t.Error("expected dialog closed")
	}
}

func TestEntriesModel_ReloadsOnChange(t *testing.T) {
	services, _ := setupTestServices(t)
	model := NewEntriesModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	model, _ = model.Update(model.Init()())

	in := service.AddInput{Input: entry.Input{Action: "Tea"}}
	if _, err := services.Entry.Create(in, testNow); err != nil {
		t.Fatal(err)
	}

	model, cmd := model.Update(ui.EntriesChangedMsg{})
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	model, _ = model.Update(cmd())

	if !strings.Contains(model.View(), "Tea") {
		t.Errorf("expected new entry in view, got %q", model.View())
	}
}

func TestEntriesModel_CursorAdjustment(t *testing.T) {
	services, _ := setupTestServices(t)
	model := NewEntriesModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	model.cursor = 5

	model, _ = model.Update(entriesLoadedMsg{rows: []store.DisplayRow{{Index: 1, Action: "only"}}})

	if model.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", model.Cursor())
	}
}

// Config view tests

func TestConfigModel_Init(t *testing.T) {
	services, _ := setupTestServices(t)
	themeProvider := ui.NewThemeProvider("")
	model := NewConfigModel(services, themeProvider, ui.DefaultStyles(), ui.DefaultKeyMap())

	if model.Init() == nil {
		t.Error("expected Init to return a command")
	}
}

func TestConfigModel_SetSize(t *testing.T) {
	services, _ := setupTestServices(t)
	themeProvider := ui.NewThemeProvider("")
	model := NewConfigModel(services, themeProvider, ui.DefaultStyles(), ui.DefaultKeyMap())
	model.SetSize(80, 24)

	if model.width != 80 {
		t.Errorf("expected width 80, got %d", model.width)
	}
}

func TestConfigModel_View(t *testing.T) {
	services, _ := setupTestServices(t)
	themeProvider := ui.NewThemeProvider("")
	model := NewConfigModel(services, themeProvider, ui.DefaultStyles(), ui.DefaultKeyMap())
	model.snapshot.config = config.DefaultConfig()
	model.snapshot.path = "/path/to/config"
	model.snapshot.exists = false

	view := model.View()
	for _, want := range []string{"Configuration", "Config file", "storage_backend", "length_presets", "-15m +5m", "Using defaults", "(sharing disabled)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view, got %q", want, view)
		}
	}
}

func TestConfigModel_View_FileExists(t *testing.T) {
	services, _ := setupTestServices(t)
	themeProvider := ui.NewThemeProvider("")
	model := NewConfigModel(services, themeProvider, ui.DefaultStyles(), ui.DefaultKeyMap())
	model.snapshot.config = config.DefaultConfig()
	model.snapshot.exists = true

	if !strings.Contains(model.View(), "File exists") {
		t.Errorf("expected 'File exists' in view, got %q", model.View())
	}
}

func TestConfigModel_LoadConfig_ExecuteCmd(t *testing.T) {
	services, _ := setupTestServices(t)
	themeProvider := ui.NewThemeProvider("")
	model := NewConfigModel(services, themeProvider, ui.DefaultStyles(), ui.DefaultKeyMap())

	msg := model.Init()()
	loaded, ok := msg.(configLoadedMsg)
	if !ok {
		t.Fatalf("expected configLoadedMsg, got %T", msg)
	}
	if loaded.exists {
		t.Error("expected no config file in a fresh temp dir")
	}

	model, _ = model.Update(loaded)
	if model.themeName != ui.DefaultTheme {
		t.Errorf("expected default theme, got %q", model.themeName)
	}
}

func TestConfigModel_ThemeSelection(t *testing.T) {
	services, _ := setupTestServices(t)
	themeProvider := ui.NewThemeProvider("")
	model := NewConfigModel(services, themeProvider, ui.DefaultStyles(), ui.DefaultKeyMap())
	model, _ = model.Update(model.Init()())

	model, _ = model.Update(runeKey("t"))
	if !model.picker.open {
		t.Fatal("expected theme selector open")
	}

	start := model.picker.cursor
	model, _ = model.Update(runeKey("j"))
	if model.picker.cursor != start+1 {
		t.Errorf("expected cursor %d, got %d", start+1, model.picker.cursor)
	}
	selected := model.picker.names[model.picker.cursor]

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if model.picker.open {
		t.Error("expected selector closed")
	}
	if cmd == nil {
		t.Fatal("expected theme change command")
	}
	req, ok := cmd().(ui.ThemeChangeRequestMsg)
	if !ok {
		t.Fatal("expected ThemeChangeRequestMsg")
	}
	if req.ThemeName != selected {
		t.Errorf("expected %q, got %q", selected, req.ThemeName)
	}
}

func TestConfigModel_ThemeSelectionCancel(t *testing.T) {
	services, _ := setupTestServices(t)
	themeProvider := ui.NewThemeProvider("")
	model := NewConfigModel(services, themeProvider, ui.DefaultStyles(), ui.DefaultKeyMap())
	model, _ = model.Update(model.Init()())
	start := model.picker.cursor

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = model.Update(runeKey("j"))
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if cmd != nil {
		t.Error("expected no command on cancel")
	}
	if model.picker.cursor != start {
		t.Errorf("expected cursor reset to %d, got %d", start, model.picker.cursor)
	}
}

func TestConfigModel_ShowsEntryCounts(t *testing.T) {
	services := setupTestServicesWithEntries(t)
	themeProvider := ui.NewThemeProvider("")
	model := NewConfigModel(services, themeProvider, ui.DefaultStyles(), ui.DefaultKeyMap())
	model, _ = model.Update(model.Init()())

	if !strings.Contains(model.View(), "2 stored, 0 backups") {
		t.Errorf("expected entry counts in view, got %q", model.View())
	}

	services.Entry.ClearAll(func() bool { return true })
	model, cmd := model.Update(ui.EntriesChangedMsg{})
	if cmd == nil {
		t.Fatal("expected reload command after entries changed")
	}
	model, _ = model.Update(cmd())

	if !strings.Contains(model.View(), "0 stored, 1 backup") {
		t.Errorf("expected refreshed counts, got %q", model.View())
	}
}
