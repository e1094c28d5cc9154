package codec

import (
	"bytes"
	"encoding/json"
)

// canonicalPayload is the wire form of an action. The single-letter field
// names keep tokens small.
type canonicalPayload struct {
	Handler string         `json:"h"`
	Params  map[string]any `json:"p"`
}

// marshalCanonical renders the payload as compact JSON with HTML escaping
// disabled. encoding/json writes map keys in sorted order at every level,
// so the bytes are deterministic for a given payload: the same bytes feed
// both the inline encoding and key derivation.
func marshalCanonical(payload canonicalPayload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	// Encoder.Encode appends a newline that is not part of the payload.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
