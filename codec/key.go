package codec

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// keyLength is the length of a derived storage key in hex characters.
const keyLength = 12

// deriveKey hashes the canonical payload bytes into a short hex key.
// Identical payloads always derive the same key, so encoding the same
// action twice reuses one storage entry instead of growing the store.
func deriveKey(canonical []byte) string {
	sum := blake3.Sum256(canonical)
	return hex.EncodeToString(sum[:keyLength/2])
}
