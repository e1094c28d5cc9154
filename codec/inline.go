package codec

import (
	"bytes"
	"encoding/base64"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/smoxy/telegram-menu-builder/types"
)

// encodeInline renders the canonical bytes as an inline token. Compression
// always runs; the smaller of the raw and compressed bodies wins and picks
// the prefix. Returns ok=false when even the best inline form exceeds the
// token budget.
func encodeInline(canonical []byte) (string, bool, error) {
	compressed, err := compress(canonical)
	if err != nil {
		return "", false, err
	}
	body := canonical
	prefix := PrefixInline
	if len(compressed) < len(canonical) {
		body = compressed
		prefix = PrefixInlineCompressed
	}
	encoded := prefix + base64.StdEncoding.EncodeToString(body)
	if len(encoded) > MaxTokenSize {
		return "", false, nil
	}
	return encoded, true, nil
}

// decodeInline recovers the canonical payload bytes from a parsed inline
// token.
func decodeInline(t token) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(t.body)
	if err != nil {
		return nil, types.WrapError(types.KindMalformed, "invalid base64 in callback data", err)
	}
	if t.class == classInlineCompressed {
		raw, err = decompress(raw)
		if err != nil {
			return nil, types.WrapError(types.KindMalformed, "invalid compressed payload in callback data", err)
		}
	}
	return raw, nil
}

// compress deflates data at the highest zlib level.
func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
