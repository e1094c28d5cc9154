package codec

import (
	"fmt"
	"strings"

	"github.com/smoxy/telegram-menu-builder/types"
)

// Token prefixes, one per representation.
const (
	// PrefixInline marks base64 of the raw canonical payload.
	PrefixInline = "I:"
	// PrefixInlineCompressed marks base64 of the zlib-compressed payload.
	PrefixInlineCompressed = "IC:"
	// PrefixShort marks a storage key whose entry expires with the action TTL.
	PrefixShort = "S:"
	// PrefixPersistent marks a storage key whose entry never expires.
	PrefixPersistent = "P:"
)

// MaxTokenSize is the hard budget for encoded callback data, in bytes.
const MaxTokenSize = 64

// tokenClass identifies which representation a token uses.
type tokenClass int

const (
	classInline tokenClass = iota
	classInlineCompressed
	classShortRef
	classPersistentRef
)

// token is parsed callback data: its class and the body after the prefix.
// The body is base64 text for inline classes and a storage key for
// reference classes.
type token struct {
	class tokenClass
	body  string
}

// parseToken classifies raw callback data by prefix. Reference bodies are
// not validated here: whether a key resolves is the storage backend's call.
func parseToken(raw string) (token, error) {
	switch {
	case strings.HasPrefix(raw, PrefixInlineCompressed):
		return token{class: classInlineCompressed, body: raw[len(PrefixInlineCompressed):]}, nil
	case strings.HasPrefix(raw, PrefixInline):
		return token{class: classInline, body: raw[len(PrefixInline):]}, nil
	case strings.HasPrefix(raw, PrefixShort):
		return token{class: classShortRef, body: raw[len(PrefixShort):]}, nil
	case strings.HasPrefix(raw, PrefixPersistent):
		return token{class: classPersistentRef, body: raw[len(PrefixPersistent):]}, nil
	default:
		return token{}, types.NewError(types.KindMalformed, fmt.Sprintf("unknown callback data format: %.10s...", raw))
	}
}
