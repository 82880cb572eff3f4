package hashtable

import (
	"fmt"
	"strings"

	"github.com/nStangl/chained-hashtable/bucket"
	"github.com/nStangl/chained-hashtable/data"
)

// HashTable is a separately chained hash table with a
// bucket count fixed at construction. It is not safe
// for concurrent use.
//
// Every key lives in buckets[hash(key) mod N] and appears
// there at most once. count is adjusted only when an entry
// is added or removed, so LengthCached always agrees with
// LengthExact.
type HashTable[K comparable, V any] struct {
	buckets []*bucket.Bucket[K, V]
	count   int
	hash    Hasher[K]
}

// DefaultSize is the bucket count used by DefaultConfig
const DefaultSize = 8

// New creates a string keyed table with the default hasher
func New[V any](size int) (*HashTable[string, V], error) {
	h, err := HasherByName(DefaultHasher)
	if err != nil {
		return nil, err
	}

	return NewWithHasher[string, V](size, h)
}

// NewWithHasher creates a table of size buckets routing keys with hash.
// size must be positive and hash non-nil, otherwise the error wraps
// ErrInvalidArgument.
func NewWithHasher[K comparable, V any](size int, hash Hasher[K]) (*HashTable[K, V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("bucket count must be positive, got %d: %w", size, ErrInvalidArgument)
	}

	if hash == nil {
		return nil, fmt.Errorf("hasher must not be nil: %w", ErrInvalidArgument)
	}

	buckets := make([]*bucket.Bucket[K, V], size)
	for i := range buckets {
		buckets[i] = bucket.New[K, V]()
	}

	return &HashTable[K, V]{buckets: buckets, hash: hash}, nil
}

// NewFromConfig validates cfg and builds a string keyed table from it
func NewFromConfig[V any](cfg Config) (*HashTable[string, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h, err := HasherByName(cfg.Hasher)
	if err != nil {
		return nil, err
	}

	return NewWithHasher[string, V](cfg.Buckets, h)
}

func (t *HashTable[K, V]) bucketIndex(key K) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

func (t *HashTable[K, V]) bucketOf(key K) *bucket.Bucket[K, V] {
	return t.buckets[t.bucketIndex(key)]
}

func (t *HashTable[K, V]) NumBuckets() int { return len(t.buckets) }

// Contains reports whether key is stored in the table
func (t *HashTable[K, V]) Contains(key K) bool {
	b := t.bucketOf(key)
	if b.IsEmpty() {
		return false
	}

	_, ok := b.Find(bucket.MatchKey[K, V](key))

	return ok
}

// Get returns the value stored under key. A missing key yields the
// zero value and a *KeyError wrapping ErrKeyNotFound.
func (t *HashTable[K, V]) Get(key K) (V, error) {
	e, ok := t.bucketOf(key).Find(bucket.MatchKey[K, V](key))
	if !ok {
		var zero V
		return zero, notFound("get", key)
	}

	return e.Value, nil
}

// Set inserts key or, if it is already present, replaces its value in place
func (t *HashTable[K, V]) Set(key K, value V) {
	var (
		b = t.bucketOf(key)
		e = data.NewEntry(key, value)
	)

	if b.Replace(bucket.MatchKey[K, V](key), e) {
		return
	}

	b.Append(e)
	t.count++
}

// Delete removes key, failing with a *KeyError wrapping ErrKeyNotFound
// when it is absent
func (t *HashTable[K, V]) Delete(key K) error {
	if !t.bucketOf(key).Delete(bucket.MatchKey[K, V](key)) {
		return notFound("delete", key)
	}

	t.count--

	return nil
}

func (t *HashTable[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.Each(func(k K, _ V) { keys = append(keys, k) })

	return keys
}

func (t *HashTable[K, V]) Values() []V {
	values := make([]V, 0, t.count)
	t.Each(func(_ K, v V) { values = append(values, v) })

	return values
}

// Items returns every entry in bucket order, chain order within a bucket.
// Keys and Values follow the same order.
func (t *HashTable[K, V]) Items() []data.Entry[K, V] {
	items := make([]data.Entry[K, V], 0, t.count)
	for _, b := range t.buckets {
		items = append(items, b.Items()...)
	}

	return items
}

// Each calls fn for every entry, bucket by bucket in chain order
func (t *HashTable[K, V]) Each(fn func(K, V)) {
	for it := t.Iterator(); it.Next(); {
		e := it.Value()
		fn(e.Key, e.Value)
	}
}

// LengthExact counts entries by walking every chain
func (t *HashTable[K, V]) LengthExact() int {
	var n int
	for _, b := range t.buckets {
		n += b.LengthExact()
	}

	return n
}

// LengthCached returns the maintained entry count in O(1)
func (t *HashTable[K, V]) LengthCached() int { return t.count }

// BucketLengths returns the chain length of every bucket in array order
func (t *HashTable[K, V]) BucketLengths() []int {
	lengths := make([]int, len(t.buckets))
	for i, b := range t.buckets {
		lengths[i] = b.LengthCached()
	}

	return lengths
}

func (t *HashTable[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.buckets))
}

func (t *HashTable[K, V]) String() string {
	var (
		items = t.Items()
		parts = make([]string, len(items))
	)

	for i := range items {
		parts[i] = items[i].String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func (t *HashTable[K, V]) GoString() string {
	var (
		items = t.Items()
		parts = make([]string, len(items))
	)

	for i := range items {
		parts[i] = items[i].GoString()
	}

	return "HashTable([" + strings.Join(parts, ", ") + "])"
}
