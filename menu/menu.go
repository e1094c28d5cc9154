// Package menu builds inline keyboard menus and routes their callbacks.
//
// A Builder assembles buttons into a grid, encoding each button's action
// into compact callback data through the codec package. A Router decodes
// incoming callback data and dispatches it to registered handler
// functions. The package is transport-agnostic: a built Menu is plain
// data to map onto whatever bot API renders it, and the Router takes the
// raw callback data string.
package menu

// Item is one button of a built menu: display text plus either callback
// data or a URL.
type Item struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Menu is a built menu grid, rows of buttons ready to hand to a transport.
type Menu struct {
	Rows [][]Item `json:"rows"`
}

// ItemSpec is the input form of a callback button, used by AddItems.
type ItemSpec struct {
	Text    string
	Handler string
	Params  map[string]any
}

// Grid layout bounds.
const (
	MinColumns     = 1
	MaxColumns     = 8
	DefaultColumns = 3
)

// LayoutConfig controls how items are arranged into rows.
type LayoutConfig struct {
	// Columns is the number of buttons per row.
	Columns int
	// MaxRows truncates the grid after this many rows. Zero means no
	// limit.
	MaxRows int
}

// NavigationButton describes one navigation button slot.
type NavigationButton struct {
	Text    string
	Handler string
	Params  map[string]any
}

// Default navigation button labels and handler names.
const (
	DefaultBackText      = "🔙 Back"
	DefaultBackHandler   = "go_back"
	DefaultNextText      = "➡️ Next"
	DefaultNextHandler   = "go_next"
	DefaultExitText      = "❌ Exit"
	DefaultExitHandler   = "exit_menu"
	DefaultCancelText    = "🚫 Cancel"
	DefaultCancelHandler = "cancel"
)

// navigationConfig holds the configured navigation slots. Back and next
// share a row; exit and cancel are mutually exclusive and get a row of
// their own.
type navigationConfig struct {
	back   *NavigationButton
	next   *NavigationButton
	exit   *NavigationButton
	cancel *NavigationButton
}

func (n navigationConfig) configured() bool {
	return n.back != nil || n.next != nil || n.exit != nil || n.cancel != nil
}
