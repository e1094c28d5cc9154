package menubuilder

import (
	"github.com/smoxy/telegram-menu-builder/menu"
	"github.com/smoxy/telegram-menu-builder/storage"
	"github.com/smoxy/telegram-menu-builder/types"
)

// Error is an alias for types.Error, the structured error type used across
// the module.
type Error = types.Error

// Kind is an alias for types.Kind.
type Kind = types.Kind

// Error kinds, re-exported for callers that branch on failure class.
const (
	KindValidation = types.KindValidation
	KindEncoding   = types.KindEncoding
	KindMalformed  = types.KindMalformed
	KindNotFound   = types.KindNotFound
	KindStorage    = types.KindStorage
)

// ErrNotFound is returned when a storage key is absent or expired.
var ErrNotFound = storage.ErrNotFound

// ErrStorageClosed is returned when a store is used after Close.
var ErrStorageClosed = storage.ErrClosed

// ErrNoHandler is returned by Route when no handler matches an action.
var ErrNoHandler = menu.ErrNoHandler

// IsKind reports whether err, or any error it wraps, is an Error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	return types.IsKind(err, kind)
}
