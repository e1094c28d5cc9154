// Package codec encodes menu actions into callback data tokens and back.
//
// A token is at most MaxTokenSize bytes. Small payloads ride inline in the
// token itself ("I:" raw, "IC:" zlib-compressed, both base64). Larger
// payloads are written to a storage.Backend under a deterministic
// 12-character key and referenced by token: "S:" entries expire with the
// action TTL, "P:" entries never expire.
package codec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/smoxy/telegram-menu-builder/storage"
	"github.com/smoxy/telegram-menu-builder/types"
)

// shortThreshold splits reference payloads: compact JSON below this many
// bytes is stored short-lived, anything bigger persistently.
const shortThreshold = 500

// Encoder turns actions into callback data tokens and back, storing payloads
// that do not fit inline through its storage backend.
//
// The encoder itself holds no mutable state: one instance can be shared
// freely as long as its backend tolerates the resulting access pattern.
// Inline tokens never touch the backend at all.
type Encoder struct {
	storage storage.Backend
}

// NewEncoder creates an Encoder that stores oversized payloads in backend.
func NewEncoder(backend storage.Backend) *Encoder {
	return &Encoder{storage: backend}
}

// Encode renders action as callback data of at most MaxTokenSize bytes.
//
// The inline representation is tried first unless action.Strategy forces a
// reference. When inline does not fit, the payload is stored under a key
// derived from its content: actions with identical handler and params share
// one storage entry whatever their TTLs, and the most recent write decides
// that entry's lifetime. A forced inline strategy that does not fit falls
// back to a persistent entry.
func (e *Encoder) Encode(ctx context.Context, action types.Action) (string, error) {
	if err := action.Validate(); err != nil {
		return "", err
	}
	params := action.Params
	if params == nil {
		params = map[string]any{}
	}
	canonical, err := marshalCanonical(canonicalPayload{Handler: action.Handler, Params: params})
	if err != nil {
		return "", types.WrapError(types.KindEncoding, "failed to serialize action payload", err)
	}

	if action.Strategy == types.StrategyAuto || action.Strategy == types.StrategyInline {
		encoded, ok, err := encodeInline(canonical)
		if err != nil {
			return "", types.WrapError(types.KindEncoding, "failed to build inline callback data", err)
		}
		if ok {
			return encoded, nil
		}
	}

	strategy := action.Strategy
	if strategy == types.StrategyAuto {
		if len(canonical) < shortThreshold {
			strategy = types.StrategyShort
		} else {
			strategy = types.StrategyPersistent
		}
	}

	key := deriveKey(canonical)
	if strategy == types.StrategyShort {
		if err := e.storage.Set(ctx, key, canonical, action.TTL); err != nil {
			return "", types.WrapError(types.KindEncoding, fmt.Sprintf("failed to store short-lived payload %s", key), err)
		}
		return PrefixShort + key, nil
	}
	if err := e.storage.Set(ctx, key, canonical, 0); err != nil {
		return "", types.WrapError(types.KindEncoding, fmt.Sprintf("failed to store persistent payload %s", key), err)
	}
	return PrefixPersistent + key, nil
}

// Decode recovers the action carried by callback data. The returned action
// holds the handler and params only: TTL and strategy are producer-side
// hints and come back as their defaults.
//
// Malformed input, a payload without a handler, and missing or expired
// stored entries yield kinded errors (types.KindMalformed,
// types.KindNotFound). Any other storage failure is returned unchanged.
func (e *Encoder) Decode(ctx context.Context, data string) (types.Action, error) {
	t, err := parseToken(data)
	if err != nil {
		return types.Action{}, err
	}

	var canonical []byte
	switch t.class {
	case classInline, classInlineCompressed:
		canonical, err = decodeInline(t)
		if err != nil {
			return types.Action{}, err
		}
	case classShortRef:
		canonical, err = e.storage.Get(ctx, t.body)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.Action{}, types.WrapError(types.KindNotFound, fmt.Sprintf("callback data expired or not found: %s", t.body), err)
			}
			return types.Action{}, err
		}
	case classPersistentRef:
		canonical, err = e.storage.Get(ctx, t.body)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.Action{}, types.WrapError(types.KindNotFound, fmt.Sprintf("callback data not found: %s", t.body), err)
			}
			return types.Action{}, err
		}
	}

	var payload canonicalPayload
	if err := json.Unmarshal(canonical, &payload); err != nil {
		return types.Action{}, types.WrapError(types.KindMalformed, "invalid action payload in callback data", err)
	}
	if payload.Handler == "" {
		return types.Action{}, types.NewError(types.KindMalformed, "callback data payload is missing the handler field")
	}
	if payload.Params == nil {
		payload.Params = map[string]any{}
	}

	action := types.Action{
		Handler: payload.Handler,
		Params:  payload.Params,
		TTL:     types.DefaultTTL,
	}
	if err := action.Validate(); err != nil {
		return types.Action{}, types.WrapError(types.KindMalformed, "decoded payload failed validation", err)
	}
	return action, nil
}

// Cleanup releases the stored payload behind a short-lived token, reporting
// whether an entry was removed. Inline and persistent tokens have nothing
// to release, and storage failures are swallowed: cleanup is best-effort.
func (e *Encoder) Cleanup(ctx context.Context, data string) bool {
	t, err := parseToken(data)
	if err != nil || t.class != classShortRef {
		return false
	}
	removed, err := e.storage.Delete(ctx, t.body)
	if err != nil {
		return false
	}
	return removed
}
