// Package types provides shared types used across the menu builder packages.
package types

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

// Strategy selects how an encoded action is represented in callback data.
type Strategy string

const (
	// StrategyAuto lets the encoder choose from the payload size.
	StrategyAuto Strategy = ""
	// StrategyInline carries the payload inside the callback data itself.
	StrategyInline Strategy = "inline"
	// StrategyShort stores the payload under a key that expires with the
	// action TTL.
	StrategyShort Strategy = "short"
	// StrategyPersistent stores the payload under a key with no expiry.
	StrategyPersistent Strategy = "persistent"
)

const (
	// DefaultTTL is applied by NewAction when no TTL is given.
	DefaultTTL = time.Hour
	// MinTTL is the smallest accepted Action TTL.
	MinTTL = time.Minute
	// MaxTTL is the largest accepted Action TTL.
	MaxTTL = 24 * time.Hour

	maxHandlerLength = 100
)

// Action is a callback action: the handler to invoke and the parameters to
// invoke it with.
type Action struct {
	// Handler names the function that processes the action. It must be
	// 1-100 characters of letters, digits, underscores, and dots.
	Handler string `json:"handler"`

	// Params carries the handler arguments. Values must be JSON-serializable.
	Params map[string]any `json:"params,omitempty"`

	// Strategy optionally forces the encoding representation. Leave as
	// StrategyAuto to let the encoder decide.
	Strategy Strategy `json:"strategy,omitempty"`

	// TTL bounds the lifetime of payloads stored under the short-lived
	// strategy. It does not affect inline or persistent representations.
	TTL time.Duration `json:"ttl,omitempty"`
}

// NewAction builds a validated Action with the default TTL.
func NewAction(handler string, params map[string]any) (Action, error) {
	if params == nil {
		params = map[string]any{}
	}
	action := Action{
		Handler: handler,
		Params:  params,
		TTL:     DefaultTTL,
	}
	if err := action.Validate(); err != nil {
		return Action{}, err
	}
	return action, nil
}

// Validate checks the action against the construction rules. Actions built
// through NewAction are already validated; Validate exists for actions
// assembled field by field. A zero TTL is rejected: set it explicitly or use
// NewAction to pick up DefaultTTL.
func (a Action) Validate() error {
	if n := utf8.RuneCountInString(a.Handler); n == 0 || n > maxHandlerLength {
		return NewError(KindValidation, fmt.Sprintf("handler length %d outside 1-%d", n, maxHandlerLength))
	}
	if !validHandlerName(a.Handler) {
		return NewError(KindValidation, fmt.Sprintf("handler %q must contain only letters, digits, underscores, and dots", a.Handler))
	}
	if a.TTL < MinTTL || a.TTL > MaxTTL {
		return NewError(KindValidation, fmt.Sprintf("ttl %s outside %s-%s", a.TTL, MinTTL, MaxTTL))
	}
	switch a.Strategy {
	case StrategyAuto, StrategyInline, StrategyShort, StrategyPersistent:
	default:
		return NewError(KindValidation, fmt.Sprintf("unknown strategy %q", a.Strategy))
	}
	if _, err := json.Marshal(a.Params); err != nil {
		return WrapError(KindValidation, "params must be JSON-serializable", err)
	}
	return nil
}

// validHandlerName reports whether s contains only letters, digits,
// underscores, and dots, with at least one letter or digit.
func validHandlerName(s string) bool {
	hasAlnum := false
	for _, r := range s {
		switch {
		case r == '_' || r == '.':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			hasAlnum = true
		default:
			return false
		}
	}
	return hasAlnum
}
