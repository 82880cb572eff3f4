package data

import "fmt"

// Entry is a single key value pair stored in a chain
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

func NewEntry[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// Matches reports whether the entry is stored under key
func (e Entry[K, V]) Matches(key K) bool { return e.Key == key }

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%#v: %#v", e.Key, e.Value)
}

// GoString renders the entry as a (key, value) pair
func (e Entry[K, V]) GoString() string {
	return fmt.Sprintf("(%#v, %#v)", e.Key, e.Value)
}
