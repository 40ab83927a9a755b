package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the SHA-256 of data as a 64-character hex string.
// [FileCache] uses it to derive filenames from cache keys.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a "prefix:hash" key from the given components. The
// [Keyer] track and snapshot keys go through here so option structs
// (consequence filters, snapshot dimensions) are folded into the key
// without escaping concerns. The full 256-bit hash is kept: snapshot
// keys are minted on every range change and must never collide.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
