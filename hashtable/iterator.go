package hashtable

import (
	"github.com/nStangl/chained-hashtable/bucket"
	"github.com/nStangl/chained-hashtable/data"
)

// Iterator walks the table lazily, one bucket at a time.
// A fresh iterator always starts again from the first bucket.
type Iterator[K comparable, V any] struct {
	buckets []*bucket.Bucket[K, V]
	next    int
	chain   *bucket.Iterator[K, V]
}

func (t *HashTable[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{buckets: t.buckets}
}

func (i *Iterator[K, V]) Next() bool {
	for {
		if i.chain != nil && i.chain.Next() {
			return true
		}

		if i.next >= len(i.buckets) {
			i.chain = nil
			return false
		}

		i.chain = i.buckets[i.next].Iterator()
		i.next++
	}
}

// Value returns the current entry. It is only valid after Next returned true.
func (i *Iterator[K, V]) Value() data.Entry[K, V] { return i.chain.Value() }
