package menu

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/smoxy/telegram-menu-builder/codec"
	"github.com/smoxy/telegram-menu-builder/storage"
	"github.com/smoxy/telegram-menu-builder/types"
)

// fillerDigits returns n bytes of digit noise that cannot be squeezed into
// an inline token, forcing the storage path.
func fillerDigits(n int) string {
	var sb strings.Builder
	for i := 0; sb.Len() < n; i++ {
		fmt.Fprintf(&sb, "%d", (i+1)*(i+7)*104729+i*7919)
	}
	return sb.String()[:n]
}

// testLogger records log lines so tests can assert on them.
type testLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *testLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+" "+msg)
}

func (l *testLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg) }
func (l *testLogger) Info(msg string, args ...any)  { l.record("INFO", msg) }
func (l *testLogger) Warn(msg string, args ...any)  { l.record("WARN", msg) }
func (l *testLogger) Error(msg string, args ...any) { l.record("ERROR", msg) }

func (l *testLogger) contains(level, substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, entry := range l.entries {
		if strings.HasPrefix(entry, level+" ") && strings.Contains(entry, substr) {
			return true
		}
	}
	return false
}

func TestBuilderBuildSimple(t *testing.T) {
	builder := NewBuilder(DefaultOptions())

	menu, err := builder.
		AddItem("Edit", "edit_user", map[string]any{"id": 1}).
		AddItem("Delete", "delete_user", map[string]any{"id": 1}).
		Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}

	if len(menu.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(menu.Rows))
	}
	if len(menu.Rows[0]) != 2 {
		t.Fatalf("Expected 2 buttons, got %d", len(menu.Rows[0]))
	}
	for _, item := range menu.Rows[0] {
		if item.CallbackData == "" {
			t.Errorf("Button %s has no callback data", item.Text)
		}
		if len(item.CallbackData) > codec.MaxTokenSize {
			t.Errorf("Button %s callback data exceeds %d bytes", item.Text, codec.MaxTokenSize)
		}
	}
	if menu.Rows[0][0].Text != "Edit" || menu.Rows[0][1].Text != "Delete" {
		t.Errorf("Buttons out of order: %v", menu.Rows[0])
	}
}

func TestBuilderGridArrangement(t *testing.T) {
	builder := NewBuilder(DefaultOptions()).Columns(2)
	for i := 0; i < 5; i++ {
		builder.AddItem(fmt.Sprintf("Item %d", i), "pick", map[string]any{"n": i})
	}

	menu, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}

	if len(menu.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(menu.Rows))
	}
	for i, want := range []int{2, 2, 1} {
		if len(menu.Rows[i]) != want {
			t.Errorf("Expected %d buttons in row %d, got %d", want, i, len(menu.Rows[i]))
		}
	}
}

func TestBuilderSingleColumn(t *testing.T) {
	menu, err := NewBuilder(DefaultOptions()).
		Columns(1).
		AddItem("A", "a", nil).
		AddItem("B", "b", nil).
		AddItem("C", "c", nil).
		Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}

	if len(menu.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(menu.Rows))
	}
	for i, row := range menu.Rows {
		if len(row) != 1 {
			t.Errorf("Expected 1 button in row %d, got %d", i, len(row))
		}
	}
}

func TestBuilderMaxRowsTruncates(t *testing.T) {
	builder := NewBuilder(DefaultOptions()).Columns(2).MaxRows(2)
	for i := 0; i < 6; i++ {
		builder.AddItem(fmt.Sprintf("Item %d", i), "pick", map[string]any{"n": i})
	}

	menu, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}

	if len(menu.Rows) != 2 {
		t.Fatalf("Expected 2 rows after truncation, got %d", len(menu.Rows))
	}
	total := 0
	for _, row := range menu.Rows {
		total += len(row)
	}
	if total != 4 {
		t.Errorf("Expected 4 buttons after truncation, got %d", total)
	}
}

func TestBuilderColumnsOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 9} {
		builder := NewBuilder(DefaultOptions()).Columns(n).AddItem("A", "a", nil)
		if builder.Err() == nil {
			t.Errorf("Expected recorded error for %d columns", n)
			continue
		}
		_, err := builder.Build(context.Background())
		if err == nil {
			t.Errorf("Expected build error for %d columns", n)
			continue
		}
		if !types.IsKind(err, types.KindValidation) {
			t.Errorf("Expected validation error for %d columns, got %v", n, err)
		}
	}
}

func TestBuilderMaxRowsNegative(t *testing.T) {
	_, err := NewBuilder(DefaultOptions()).MaxRows(-1).AddItem("A", "a", nil).Build(context.Background())
	if err == nil {
		t.Fatal("Expected error for negative max rows")
	}
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestBuilderStickyFirstError(t *testing.T) {
	builder := NewBuilder(DefaultOptions()).Columns(0).MaxRows(-1).AddItem("A", "a", nil)

	_, err := builder.Build(context.Background())
	if err == nil {
		t.Fatal("Expected build error")
	}
	if !strings.Contains(err.Error(), "columns") {
		t.Errorf("Expected the first recorded error to win, got %v", err)
	}
}

func TestBuilderEmptyMenu(t *testing.T) {
	_, err := NewBuilder(DefaultOptions()).Build(context.Background())
	if err == nil {
		t.Fatal("Expected error for empty menu")
	}
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestBuilderInvalidItemHandler(t *testing.T) {
	_, err := NewBuilder(DefaultOptions()).
		AddItem("Bad", "bad handler!", nil).
		Build(context.Background())
	if err == nil {
		t.Fatal("Expected error for invalid handler name")
	}
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestBuilderURLButton(t *testing.T) {
	menu, err := NewBuilder(DefaultOptions()).
		AddItem("Edit", "edit", nil).
		AddURLButton("Docs", "https://example.com/docs").
		Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}

	url := menu.Rows[0][1]
	if url.URL != "https://example.com/docs" {
		t.Errorf("Expected URL to be set, got %q", url.URL)
	}
	if url.CallbackData != "" {
		t.Errorf("URL button should have no callback data, got %q", url.CallbackData)
	}
}

func TestBuilderAddItems(t *testing.T) {
	specs := []ItemSpec{
		{Text: "One", Handler: "one"},
		{Text: "Two", Handler: "two"},
		{Text: "Three", Handler: "three"},
	}

	menu, err := NewBuilder(DefaultOptions()).AddItems(specs).Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}

	if len(menu.Rows) != 1 || len(menu.Rows[0]) != 3 {
		t.Fatalf("Expected 1 row of 3 buttons, got %v", menu.Rows)
	}
	for i, spec := range specs {
		if menu.Rows[0][i].Text != spec.Text {
			t.Errorf("Expected %s at position %d, got %s", spec.Text, i, menu.Rows[0][i].Text)
		}
	}
}

func TestBuilderNavigationRow(t *testing.T) {
	builder := NewBuilder(DefaultOptions()).
		AddItem("A", "a", nil).
		AddBackButton("", "", map[string]any{"page": 1}).
		AddNextButton("", "", map[string]any{"page": 3})

	menu, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}

	if len(menu.Rows) != 2 {
		t.Fatalf("Expected item row plus navigation row, got %d rows", len(menu.Rows))
	}
	nav := menu.Rows[1]
	if len(nav) != 2 {
		t.Fatalf("Expected back and next on one row, got %d buttons", len(nav))
	}
	if nav[0].Text != DefaultBackText || nav[1].Text != DefaultNextText {
		t.Errorf("Expected default navigation labels, got %q and %q", nav[0].Text, nav[1].Text)
	}

	back, err := builder.Encoder().Decode(context.Background(), nav[0].CallbackData)
	if err != nil {
		t.Fatalf("Failed to decode back button: %v", err)
	}
	if back.Handler != DefaultBackHandler {
		t.Errorf("Expected handler %s, got %s", DefaultBackHandler, back.Handler)
	}
	if back.Params["page"] != float64(1) {
		t.Errorf("Expected page 1, got %v", back.Params["page"])
	}
}

func TestBuilderExitRow(t *testing.T) {
	builder := NewBuilder(DefaultOptions()).
		AddItem("A", "a", nil).
		AddExitButton("", "", nil)

	menu, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}

	last := menu.Rows[len(menu.Rows)-1]
	if len(last) != 1 {
		t.Fatalf("Exit button should sit on its own row, got %d buttons", len(last))
	}
	if last[0].Text != DefaultExitText {
		t.Errorf("Expected %s, got %s", DefaultExitText, last[0].Text)
	}

	exit, err := builder.Encoder().Decode(context.Background(), last[0].CallbackData)
	if err != nil {
		t.Fatalf("Failed to decode exit button: %v", err)
	}
	if exit.Handler != DefaultExitHandler {
		t.Errorf("Expected handler %s, got %s", DefaultExitHandler, exit.Handler)
	}
}

func TestBuilderCancelRow(t *testing.T) {
	builder := NewBuilder(DefaultOptions()).
		AddItem("A", "a", nil).
		AddCancelButton("", "", nil)

	menu, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}

	last := menu.Rows[len(menu.Rows)-1]
	if len(last) != 1 || last[0].Text != DefaultCancelText {
		t.Errorf("Expected a lone cancel row, got %v", last)
	}
}

func TestBuilderExitCancelConflict(t *testing.T) {
	_, err := NewBuilder(DefaultOptions()).
		AddItem("A", "a", nil).
		AddExitButton("", "", nil).
		AddCancelButton("", "", nil).
		Build(context.Background())
	if err == nil {
		t.Fatal("Expected error for exit and cancel together")
	}
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestBuilderNavigationOnly(t *testing.T) {
	menu, err := NewBuilder(DefaultOptions()).
		AddBackButton("Back to menu", "main_menu", nil).
		Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build navigation-only menu: %v", err)
	}

	if len(menu.Rows) != 1 || len(menu.Rows[0]) != 1 {
		t.Fatalf("Expected a single navigation row, got %v", menu.Rows)
	}
	if menu.Rows[0][0].Text != "Back to menu" {
		t.Errorf("Custom label should win over the default, got %s", menu.Rows[0][0].Text)
	}
}

func TestBuilderLargeParamsUseStorage(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()
	builder := NewBuilder(Options{Storage: store})

	menu, err := builder.
		AddItem("Report", "show_report", map[string]any{"blob": fillerDigits(120)}).
		Build(context.Background())
	if err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}

	data := menu.Rows[0][0].CallbackData
	if !strings.HasPrefix(data, codec.PrefixShort) {
		t.Errorf("Expected a stored reference token, got %s", data)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if stats.TotalKeys != 1 {
		t.Errorf("Expected 1 stored payload, got %d", stats.TotalKeys)
	}
}

func TestBuilderDebugLogging(t *testing.T) {
	logger := &testLogger{}
	builder := NewBuilder(Options{Logger: logger, DebugMode: true, MenuID: "settings"})

	if _, err := builder.AddItem("A", "a", nil).Build(context.Background()); err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}
	if !logger.contains("DEBUG", "assembling menu") {
		t.Error("Expected a debug line about menu assembly")
	}

	quiet := &testLogger{}
	builder = NewBuilder(Options{Logger: quiet})
	if _, err := builder.AddItem("A", "a", nil).Build(context.Background()); err != nil {
		t.Fatalf("Failed to build menu: %v", err)
	}
	if len(quiet.entries) != 0 {
		t.Errorf("Expected no log output without debug mode, got %v", quiet.entries)
	}
}
