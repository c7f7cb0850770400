// Package cache stores encoded plan results keyed by a hash of their inputs.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Cache holds encoded values by key. A miss is reported through the boolean,
// not as an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Key hashes the JSON encoding of parts into a key under prefix. Equal
// inputs always produce equal keys.
func Key(prefix string, parts ...interface{}) (string, error) {
	d := xxhash.New()
	for _, part := range parts {
		b, err := json.Marshal(part)
		if err != nil {
			return "", fmt.Errorf("encode cache key part: %w", err)
		}
		_, _ = d.Write(b)
		_, _ = d.Write([]byte{0})
	}
	return fmt.Sprintf("%s:%016x", prefix, d.Sum64()), nil
}

// Fingerprint is a short stable hash of v's JSON encoding.
func Fingerprint(v interface{}) (uint64, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(b), nil
}
