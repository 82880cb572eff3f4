package hashtable

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/nStangl/chained-hashtable/util"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Hasher maps a key to a 64 bit hash code. It must
// be deterministic for the lifetime of a table.
type Hasher[K comparable] func(K) uint64

const (
	XXHash  = "xxhash"
	XXH3    = "xxh3"
	Murmur3 = "murmur3"
	MD5     = "md5"

	DefaultHasher = XXHash
)

var hashers = map[string]Hasher[string]{
	XXHash:  xxhash.Sum64String,
	XXH3:    xxh3.HashString,
	Murmur3: func(key string) uint64 { return murmur3.Sum64([]byte(key)) },
	MD5:     func(key string) uint64 { return util.Fold64(util.MD5HashUint128(key)) },
}

// HasherByName looks up one of the builtin string hashers
func HasherByName(name string) (Hasher[string], error) {
	h, ok := hashers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown hasher %q: %w", name, ErrInvalidArgument)
	}

	return h, nil
}

// Hashers lists the names accepted by HasherByName
func Hashers() []string {
	return []string{XXHash, XXH3, Murmur3, MD5}
}
