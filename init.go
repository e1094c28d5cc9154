// Package menubuilder builds inline keyboard menus with compact callback
// data.
//
// Bot platforms cap callback data at 64 bytes. The codec package encodes
// arbitrary action payloads into that budget: small payloads ride inline in
// the callback data itself (compressed when that wins), larger ones are
// written to a pluggable storage backend and referenced by a deterministic
// short key. On top of the codec, the menu package offers a fluent Builder
// for button grids and a Router that dispatches decoded callbacks to
// handler functions.
package menubuilder

import (
	"github.com/smoxy/telegram-menu-builder/menu"
)

// Config configures a menu Builder or Router created through this package.
type Config struct {
	// Storage holds encoded payloads that do not fit inline in callback
	// data. If nil, each New call creates its own in-memory store, so
	// builders and routers serving the same menus must be given one
	// shared backend explicitly.
	Storage Backend

	// Logger receives builder and router diagnostics.
	// If nil, defaults to a no-op logger.
	Logger Logger

	// DebugMode enables debug logging.
	DebugMode bool

	// AutoCleanup makes the router release short-lived stored payloads
	// after successful routing. Leave it off for menus whose buttons are
	// clicked more than once.
	AutoCleanup bool

	// DefaultHandler runs for actions whose handler has no registration.
	DefaultHandler HandlerFunc

	// MenuID tags builder log output.
	MenuID string
}

// New creates a callback Router.
// This is the root-level initialization function that allows users to
// import from the root package.
func New(cfg Config) *Router {
	return menu.NewRouter(cfg.options())
}

// NewBuilder creates a menu Builder.
func NewBuilder(cfg Config) *Builder {
	return menu.NewBuilder(cfg.options())
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage:   nil, // Will default to an in-memory store in New()
		Logger:    nil, // Will default to no-op in New()
		DebugMode: false,
	}
}

// options converts the root Config to menu.Options.
func (c Config) options() menu.Options {
	return menu.Options{
		Storage:        c.Storage,
		Logger:         c.Logger,
		DebugMode:      c.DebugMode,
		AutoCleanup:    c.AutoCleanup,
		DefaultHandler: c.DefaultHandler,
		MenuID:         c.MenuID,
	}
}
