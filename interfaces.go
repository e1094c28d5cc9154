package menubuilder

import (
	"github.com/smoxy/telegram-menu-builder/codec"
	"github.com/smoxy/telegram-menu-builder/menu"
	"github.com/smoxy/telegram-menu-builder/storage"
	"github.com/smoxy/telegram-menu-builder/types"
)

// Action is an alias for types.Action.
type Action = types.Action

// Strategy is an alias for types.Strategy.
type Strategy = types.Strategy

// Storage strategies, re-exported.
const (
	StrategyAuto       = types.StrategyAuto
	StrategyInline     = types.StrategyInline
	StrategyShort      = types.StrategyShort
	StrategyPersistent = types.StrategyPersistent
)

// MaxTokenSize is the hard budget for encoded callback data, in bytes.
const MaxTokenSize = codec.MaxTokenSize

// Backend is an alias for storage.Backend.
type Backend = storage.Backend

// MemoryStore is an alias for storage.MemoryStore.
type MemoryStore = storage.MemoryStore

// BoundedStore is an alias for storage.BoundedStore.
type BoundedStore = storage.BoundedStore

// SyncedStore is an alias for storage.SyncedStore.
type SyncedStore = storage.SyncedStore

// Encoder is an alias for codec.Encoder.
type Encoder = codec.Encoder

// Logger is an alias for menu.Logger.
type Logger = menu.Logger

// Builder is an alias for menu.Builder.
type Builder = menu.Builder

// Router is an alias for menu.Router.
type Router = menu.Router

// Group is an alias for menu.Group.
type Group = menu.Group

// Menu is an alias for menu.Menu.
type Menu = menu.Menu

// Item is an alias for menu.Item.
type Item = menu.Item

// ItemSpec is an alias for menu.ItemSpec.
type ItemSpec = menu.ItemSpec

// NavigationButton is an alias for menu.NavigationButton.
type NavigationButton = menu.NavigationButton

// HandlerFunc is an alias for menu.HandlerFunc.
type HandlerFunc = menu.HandlerFunc

// ErrorHandler is an alias for menu.ErrorHandler.
type ErrorHandler = menu.ErrorHandler

// NewAction builds a validated Action with the default TTL.
func NewAction(handler string, params map[string]any) (Action, error) {
	return types.NewAction(handler, params)
}

// NewMemoryStore creates the in-memory reference storage backend.
func NewMemoryStore() *MemoryStore {
	return storage.NewMemoryStore()
}

// NewBoundedStore creates an in-memory backend holding at most maxEntries
// payloads, evicting the least recently used entry beyond that.
func NewBoundedStore(maxEntries int) (*BoundedStore, error) {
	return storage.NewBoundedStore(maxEntries)
}

// NewSyncedStore wraps a backend with a mutex for concurrent use.
func NewSyncedStore(backend Backend) *SyncedStore {
	return storage.NewSyncedStore(backend)
}

// NewEncoder creates a callback data Encoder over backend.
func NewEncoder(backend Backend) *Encoder {
	return codec.NewEncoder(backend)
}

// EstimateSize predicts the callback data size for action without encoding
// it.
func EstimateSize(action Action) (int, error) {
	return codec.EstimateSize(action)
}
