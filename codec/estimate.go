package codec

import "github.com/smoxy/telegram-menu-builder/types"

// Estimation factors, tuned against typical action payloads.
const (
	estimatedCompressionRatio = 0.7
	base64Overhead            = 1.33
	prefixAllowance           = 3
)

// EstimateSize predicts the callback data size for action without encoding
// it or touching storage. The estimate assumes roughly 30% compression plus
// base64 and prefix overhead; it is a planning aid for choosing payload
// shapes, not a guarantee.
func EstimateSize(action types.Action) (int, error) {
	params := action.Params
	if params == nil {
		params = map[string]any{}
	}
	canonical, err := marshalCanonical(canonicalPayload{Handler: action.Handler, Params: params})
	if err != nil {
		return 0, types.WrapError(types.KindEncoding, "failed to serialize action payload", err)
	}
	estimated := float64(len(canonical)) * estimatedCompressionRatio * base64Overhead
	return int(estimated + prefixAllowance), nil
}
