package menu

import (
	"context"
	"fmt"

	"github.com/smoxy/telegram-menu-builder/codec"
	"github.com/smoxy/telegram-menu-builder/storage"
	"github.com/smoxy/telegram-menu-builder/types"
)

// Builder assembles an inline keyboard menu through a fluent API. Items and
// navigation buttons accumulate on the builder; Build encodes every action
// into callback data and arranges the grid.
//
// Chain methods never fail mid-chain: the first configuration error is
// recorded and returned by Build (or Err), so chains can stay
// unconditional.
type Builder struct {
	storage storage.Backend
	encoder *codec.Encoder
	logger  Logger
	debug   bool
	menuID  string

	items  []pendingItem
	layout LayoutConfig
	nav    navigationConfig
	err    error
}

// pendingItem is a button waiting for Build to encode it. URL buttons
// carry no action and skip encoding.
type pendingItem struct {
	text    string
	handler string
	params  map[string]any
	url     string
}

// NewBuilder creates a Builder. Nil option fields get defaults: a fresh
// in-memory store and a no-op logger.
func NewBuilder(opts Options) *Builder {
	opts = opts.withDefaults()
	return &Builder{
		storage: opts.Storage,
		encoder: codec.NewEncoder(opts.Storage),
		logger:  opts.Logger,
		debug:   opts.DebugMode,
		menuID:  opts.MenuID,
		layout:  LayoutConfig{Columns: DefaultColumns},
	}
}

// AddItem appends a button that routes to handler with the given params.
func (b *Builder) AddItem(text, handler string, params map[string]any) *Builder {
	b.items = append(b.items, pendingItem{text: text, handler: handler, params: params})
	return b
}

// AddItems appends several callback buttons at once.
func (b *Builder) AddItems(items []ItemSpec) *Builder {
	for _, item := range items {
		b.AddItem(item.Text, item.Handler, item.Params)
	}
	return b
}

// AddURLButton appends a button that opens a URL instead of routing a
// callback.
func (b *Builder) AddURLButton(text, url string) *Builder {
	b.items = append(b.items, pendingItem{text: text, url: url})
	return b
}

// Columns sets how many buttons fill a row before wrapping.
func (b *Builder) Columns(n int) *Builder {
	if n < MinColumns || n > MaxColumns {
		b.fail(types.NewError(types.KindValidation, fmt.Sprintf("columns must be between %d and %d, got %d", MinColumns, MaxColumns, n)))
		return b
	}
	b.layout.Columns = n
	return b
}

// MaxRows truncates the grid after n rows. Zero removes the limit.
func (b *Builder) MaxRows(n int) *Builder {
	if n < 0 {
		b.fail(types.NewError(types.KindValidation, fmt.Sprintf("max rows must be zero or positive, got %d", n)))
		return b
	}
	b.layout.MaxRows = n
	return b
}

// AddBackButton places a back button on the navigation row. Empty text or
// handler fall back to DefaultBackText and DefaultBackHandler.
func (b *Builder) AddBackButton(text, handler string, params map[string]any) *Builder {
	if text == "" {
		text = DefaultBackText
	}
	if handler == "" {
		handler = DefaultBackHandler
	}
	b.nav.back = &NavigationButton{Text: text, Handler: handler, Params: params}
	return b
}

// AddNextButton places a next button beside the back button. Empty text or
// handler fall back to DefaultNextText and DefaultNextHandler.
func (b *Builder) AddNextButton(text, handler string, params map[string]any) *Builder {
	if text == "" {
		text = DefaultNextText
	}
	if handler == "" {
		handler = DefaultNextHandler
	}
	b.nav.next = &NavigationButton{Text: text, Handler: handler, Params: params}
	return b
}

// AddExitButton places an exit button on its own final row. Empty text or
// handler fall back to DefaultExitText and DefaultExitHandler. A menu
// cannot have both an exit and a cancel button.
func (b *Builder) AddExitButton(text, handler string, params map[string]any) *Builder {
	if text == "" {
		text = DefaultExitText
	}
	if handler == "" {
		handler = DefaultExitHandler
	}
	b.nav.exit = &NavigationButton{Text: text, Handler: handler, Params: params}
	return b
}

// AddCancelButton places a cancel button on its own final row. Empty text
// or handler fall back to DefaultCancelText and DefaultCancelHandler. A
// menu cannot have both an exit and a cancel button.
func (b *Builder) AddCancelButton(text, handler string, params map[string]any) *Builder {
	if text == "" {
		text = DefaultCancelText
	}
	if handler == "" {
		handler = DefaultCancelHandler
	}
	b.nav.cancel = &NavigationButton{Text: text, Handler: handler, Params: params}
	return b
}

// Build validates the configuration, encodes every action, and arranges
// the grid. Items fill rows left to right, Columns per row; when MaxRows
// is set the grid is truncated there and later items are dropped. Back and
// next share one navigation row, and exit or cancel closes the menu on a
// row of its own.
func (b *Builder) Build(ctx context.Context) (Menu, error) {
	if b.err != nil {
		return Menu{}, b.err
	}
	if len(b.items) == 0 && !b.nav.configured() {
		return Menu{}, types.NewError(types.KindValidation, "cannot build empty menu: no items or navigation buttons")
	}
	if b.nav.exit != nil && b.nav.cancel != nil {
		return Menu{}, types.NewError(types.KindValidation, "menu cannot have both exit and cancel buttons")
	}

	if b.debug {
		b.logger.Debug("Build: assembling menu", "menu_id", b.menuID, "items", len(b.items))
	}

	var rows [][]Item
	var row []Item
	for _, pending := range b.items {
		item, err := b.buildItem(ctx, pending)
		if err != nil {
			return Menu{}, err
		}
		row = append(row, item)
		if len(row) >= b.layout.Columns {
			rows = append(rows, row)
			row = nil
		}
		if b.layout.MaxRows > 0 && len(rows) >= b.layout.MaxRows {
			break
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	navRows, err := b.buildNavigation(ctx)
	if err != nil {
		return Menu{}, err
	}
	rows = append(rows, navRows...)

	return Menu{Rows: rows}, nil
}

// Err returns the first configuration error recorded by a chain method,
// if any.
func (b *Builder) Err() error {
	return b.err
}

// Storage returns the backend this builder encodes through.
func (b *Builder) Storage() storage.Backend {
	return b.storage
}

// Encoder returns the callback data encoder.
func (b *Builder) Encoder() *codec.Encoder {
	return b.encoder
}

// buildItem encodes one pending button into its final form.
func (b *Builder) buildItem(ctx context.Context, pending pendingItem) (Item, error) {
	if pending.url != "" {
		return Item{Text: pending.text, URL: pending.url}, nil
	}
	action, err := types.NewAction(pending.handler, pending.params)
	if err != nil {
		return Item{}, err
	}
	data, err := b.encoder.Encode(ctx, action)
	if err != nil {
		return Item{}, err
	}
	if b.debug {
		b.logger.Debug("Build: encoded item", "handler", pending.handler, "bytes", len(data))
	}
	return Item{Text: pending.text, CallbackData: data}, nil
}

// buildNavigation encodes the configured navigation slots into their rows.
func (b *Builder) buildNavigation(ctx context.Context) ([][]Item, error) {
	var rows [][]Item

	var backNext []Item
	for _, btn := range []*NavigationButton{b.nav.back, b.nav.next} {
		if btn == nil {
			continue
		}
		item, err := b.buildItem(ctx, pendingItem{text: btn.Text, handler: btn.Handler, params: btn.Params})
		if err != nil {
			return nil, err
		}
		backNext = append(backNext, item)
	}
	if len(backNext) > 0 {
		rows = append(rows, backNext)
	}

	closing := b.nav.exit
	if closing == nil {
		closing = b.nav.cancel
	}
	if closing != nil {
		item, err := b.buildItem(ctx, pendingItem{text: closing.Text, handler: closing.Handler, params: closing.Params})
		if err != nil {
			return nil, err
		}
		rows = append(rows, []Item{item})
	}

	return rows, nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
