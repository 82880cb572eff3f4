package bucket

import (
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/nStangl/chained-hashtable/data"
)

// A bucket is the chain of entries whose keys
// hash to the same slot. It keeps insertion order
// and does not enforce key uniqueness, that is
// left to the owning table.

type (
	Bucket[K comparable, V any] struct {
		list *singlylinkedlist.List
	}

	Iterator[K comparable, V any] struct {
		iter singlylinkedlist.Iterator
	}

	Predicate[K comparable, V any] func(data.Entry[K, V]) bool
)

func New[K comparable, V any]() *Bucket[K, V] {
	return &Bucket[K, V]{list: singlylinkedlist.New()}
}

// MatchKey returns a predicate selecting the entry stored under key
func MatchKey[K comparable, V any](key K) Predicate[K, V] {
	return func(e data.Entry[K, V]) bool { return e.Matches(key) }
}

func (b *Bucket[K, V]) Append(e data.Entry[K, V]) {
	b.list.Add(e)
}

// Find returns the first entry in chain order satisfying pred
func (b *Bucket[K, V]) Find(pred Predicate[K, V]) (data.Entry[K, V], bool) {
	i, v := b.find(pred)
	if i < 0 {
		return data.Entry[K, V]{}, false
	}

	return v, true
}

// Replace swaps the first entry satisfying pred for e, keeping its position
func (b *Bucket[K, V]) Replace(pred Predicate[K, V], e data.Entry[K, V]) bool {
	i, _ := b.find(pred)
	if i < 0 {
		return false
	}

	b.list.Set(i, e)

	return true
}

// Delete unlinks the first entry satisfying pred
func (b *Bucket[K, V]) Delete(pred Predicate[K, V]) bool {
	i, _ := b.find(pred)
	if i < 0 {
		return false
	}

	b.list.Remove(i)

	return true
}

func (b *Bucket[K, V]) IsEmpty() bool { return b.list.Empty() }

// LengthExact counts the entries by walking the chain
func (b *Bucket[K, V]) LengthExact() int {
	var (
		n  int
		it = b.list.Iterator()
	)

	for it.Next() {
		n++
	}

	return n
}

// LengthCached returns the size tracked by the underlying list
func (b *Bucket[K, V]) LengthCached() int { return b.list.Size() }

func (b *Bucket[K, V]) Items() []data.Entry[K, V] {
	items := make([]data.Entry[K, V], 0, b.list.Size())

	for it := b.Iterator(); it.Next(); {
		items = append(items, it.Value())
	}

	return items
}

func (b *Bucket[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{iter: b.list.Iterator()}
}

func (b *Bucket[K, V]) find(pred Predicate[K, V]) (int, data.Entry[K, V]) {
	i, v := b.list.Find(func(_ int, v interface{}) bool {
		return pred(v.(data.Entry[K, V]))
	})
	if i < 0 {
		return -1, data.Entry[K, V]{}
	}

	return i, v.(data.Entry[K, V])
}

func (i *Iterator[K, V]) Next() bool { return i.iter.Next() }

func (i *Iterator[K, V]) Value() data.Entry[K, V] {
	return i.iter.Value().(data.Entry[K, V])
}
