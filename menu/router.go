package menu

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/smoxy/telegram-menu-builder/codec"
	"github.com/smoxy/telegram-menu-builder/storage"
)

// HandlerFunc processes the params of a routed action.
type HandlerFunc func(ctx context.Context, params map[string]any) error

// ErrorHandler observes failures during routing.
type ErrorHandler func(ctx context.Context, err error)

// ErrNoHandler is returned by Route when no registered handler matches the
// decoded action and no default handler is set.
var ErrNoHandler = errors.New("no handler registered for action")

// Router decodes callback data and dispatches the decoded action to a
// registered handler function.
//
// Registration and routing may happen from different goroutines: the
// handler and middleware tables are guarded internally. The storage
// backend is not: give concurrent routers a backend that tolerates
// concurrent access, such as a storage.SyncedStore.
type Router struct {
	storage     storage.Backend
	encoder     *codec.Encoder
	logger      Logger
	debug       bool
	autoCleanup bool

	mu             sync.RWMutex
	handlers       map[string]HandlerFunc
	defaultHandler HandlerFunc
	before         []HandlerFunc
	after          []HandlerFunc
	onError        []ErrorHandler
}

// NewRouter creates a Router. Nil option fields get defaults: a fresh
// in-memory store and a no-op logger.
func NewRouter(opts Options) *Router {
	opts = opts.withDefaults()
	return &Router{
		storage:        opts.Storage,
		encoder:        codec.NewEncoder(opts.Storage),
		logger:         opts.Logger,
		debug:          opts.DebugMode,
		autoCleanup:    opts.AutoCleanup,
		handlers:       make(map[string]HandlerFunc),
		defaultHandler: opts.DefaultHandler,
	}
}

// Handle registers fn under name. An existing registration is replaced
// with a warning.
func (r *Router) Handle(name string, fn HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[name]; exists {
		r.logger.Warn("Handle: overwriting existing handler", "name", name)
	}
	r.handlers[name] = fn
}

// HandleMap registers every handler in the map.
func (r *Router) HandleMap(handlers map[string]HandlerFunc) {
	for name, fn := range handlers {
		r.Handle(name, fn)
	}
}

// Unregister removes the handler registered under name, reporting whether
// one existed.
func (r *Router) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[name]; !exists {
		return false
	}
	delete(r.handlers, name)
	return true
}

// SetDefault sets the fallback handler for actions with no registration.
func (r *Router) SetDefault(fn HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultHandler = fn
}

// Before appends middleware that runs before every routed handler.
func (r *Router) Before(fn HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.before = append(r.before, fn)
}

// After appends middleware that runs after every successfully routed
// handler.
func (r *Router) After(fn HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.after = append(r.after, fn)
}

// OnError appends a hook that observes decode, middleware, and handler
// failures.
func (r *Router) OnError(fn ErrorHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onError = append(r.onError, fn)
}

// Handler returns the handler registered under name, or nil.
func (r *Router) Handler(name string) HandlerFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[name]
}

// Handlers lists the registered handler names in sorted order.
func (r *Router) Handlers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Storage returns the backend this router decodes through.
func (r *Router) Storage() storage.Backend {
	return r.storage
}

// Encoder returns the callback data encoder.
func (r *Router) Encoder() *codec.Encoder {
	return r.encoder
}

// Route decodes callback data and dispatches it: before middleware first,
// then the matching handler (or the default one), then after middleware.
// Decode, middleware, and handler failures run the OnError hooks and are
// returned. When no handler matches and no default is set, Route returns
// ErrNoHandler without running the after middleware.
//
// With AutoCleanup enabled, the stored payload of a successfully routed
// short-lived token is released before Route returns.
func (r *Router) Route(ctx context.Context, data string) error {
	action, err := r.encoder.Decode(ctx, data)
	if err != nil {
		r.logger.Error("Route: failed to decode callback data", "error", err)
		r.fireError(ctx, err)
		return err
	}

	if r.debug {
		r.logger.Debug("Route: dispatching action", "handler", action.Handler)
	}

	before, after := r.middleware()
	for _, mw := range before {
		if err := mw(ctx, action.Params); err != nil {
			r.fireError(ctx, err)
			return err
		}
	}

	fn, registered := r.resolve(action.Handler)
	if fn == nil {
		r.logger.Warn("Route: no handler registered", "handler", action.Handler)
		return fmt.Errorf("%w: %q", ErrNoHandler, action.Handler)
	}
	if !registered && r.debug {
		r.logger.Debug("Route: using default handler", "handler", action.Handler)
	}
	if err := fn(ctx, action.Params); err != nil {
		r.logger.Error("Route: handler failed", "handler", action.Handler, "error", err)
		r.fireError(ctx, err)
		return err
	}

	for _, mw := range after {
		if err := mw(ctx, action.Params); err != nil {
			r.fireError(ctx, err)
			return err
		}
	}

	if r.autoCleanup {
		if r.encoder.Cleanup(ctx, data) && r.debug {
			r.logger.Debug("Route: released short-lived payload", "handler", action.Handler)
		}
	}
	return nil
}

// resolve snapshots the handler for name, falling back to the default.
// The second return reports whether the name itself was registered.
func (r *Router) resolve(name string) (HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.handlers[name]; ok {
		return fn, true
	}
	return r.defaultHandler, false
}

// middleware snapshots the middleware chains so they run without holding
// the lock.
func (r *Router) middleware() (before, after []HandlerFunc) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	before = make([]HandlerFunc, len(r.before))
	copy(before, r.before)
	after = make([]HandlerFunc, len(r.after))
	copy(after, r.after)
	return before, after
}

// fireError snapshots the error hooks, then invokes them outside the lock.
func (r *Router) fireError(ctx context.Context, err error) {
	r.mu.RLock()
	hooks := make([]ErrorHandler, len(r.onError))
	copy(hooks, r.onError)
	r.mu.RUnlock()
	for _, hook := range hooks {
		hook(ctx, err)
	}
}

// Group is a registration view that namespaces handler names under a
// dotted prefix: a group with prefix "users" registers "edit" as
// "users.edit".
type Group struct {
	prefix string
	router *Router
}

// Group creates a registration view with the given prefix.
func (r *Router) Group(prefix string) *Group {
	return &Group{prefix: prefix, router: r}
}

// Handle registers fn under the group's prefixed name.
func (g *Group) Handle(name string, fn HandlerFunc) {
	g.router.Handle(g.prefix+"."+name, fn)
}

// HandleMap registers every handler under the group's prefix.
func (g *Group) HandleMap(handlers map[string]HandlerFunc) {
	for name, fn := range handlers {
		g.Handle(name, fn)
	}
}

// Prefix returns the group's prefix.
func (g *Group) Prefix() string {
	return g.prefix
}
