package menu

import (
	"github.com/smoxy/telegram-menu-builder/storage"
)

// Options configures a Builder or Router.
type Options struct {
	// Storage holds encoded payloads that do not fit inline in callback
	// data. Defaults to a fresh in-memory store. Builders and routers
	// serving the same menus must share one backend, or routed tokens
	// will not resolve.
	Storage storage.Backend

	// Logger receives builder and router diagnostics. Defaults to a
	// no-op logger.
	Logger Logger

	// DebugMode enables debug-level logging of encoding and routing
	// decisions.
	DebugMode bool

	// AutoCleanup makes the router release the stored payload of a
	// short-lived token once it has been routed successfully. Leave it
	// off for menus that stay on screen: their buttons are clicked more
	// than once, and a released payload no longer decodes.
	AutoCleanup bool

	// DefaultHandler runs for actions whose handler has no registration.
	DefaultHandler HandlerFunc

	// MenuID tags a builder's log output, useful when several menus share
	// a logger.
	MenuID string
}

// DefaultOptions returns an Options with the default logger. Storage is
// left nil so every constructor call gets its own in-memory store.
func DefaultOptions() Options {
	return Options{
		Logger: NewNoOpLogger(),
	}
}

// withDefaults fills the nil-able fields.
func (o Options) withDefaults() Options {
	if o.Storage == nil {
		o.Storage = storage.NewMemoryStore()
	}
	if o.Logger == nil {
		o.Logger = NewNoOpLogger()
	}
	return o
}
