// Package index provides the string-keyed hash structures the catalog uses
// for name resolution.
//
// Index maps a key to an int (a slot or position); PresenceSet only records
// membership. Both hash keys with Jenkins' one-at-a-time function reduced
// modulo a prime bucket count, resolve collisions by chaining, and follow an
// explicit growth policy (Fixed or Grow) chosen at allocation.
//
// Neither type is safe for concurrent use; the catalog serializes access.
package index

import (
	domainerrors "github.com/leengari/colstore/internal/domain/errors"
)

// Index maps bounded-length string keys to integer values.
type Index struct {
	t *chainTable[int]
}

// New allocates an Index with at least capacity buckets.
func New(capacity int, opts ...Option) (*Index, error) {
	t, err := newChainTable[int]("index_allocate", capacity, opts)
	if err != nil {
		return nil, err
	}
	return &Index{t: t}, nil
}

// Insert associates key with value, replacing the value if key exists.
func (ix *Index) Insert(key string, value int) error {
	if err := ix.t.checkKey("index_insert", key); err != nil {
		return err
	}
	ix.t.put(key, value, true)
	return nil
}

// Lookup returns the value stored for key.
func (ix *Index) Lookup(key string) (int, bool) {
	return ix.t.get(key)
}

// Remove deletes key. It fails with a NotFound error if key is absent.
func (ix *Index) Remove(key string) error {
	if !ix.t.remove(key) {
		return domainerrors.NewNotFound("index_remove", key)
	}
	return nil
}

// Len returns the number of keys.
func (ix *Index) Len() int {
	return ix.t.count
}

// Buckets returns the current bucket count.
func (ix *Index) Buckets() int {
	return len(ix.t.buckets)
}

// Keys returns every key in sorted order.
func (ix *Index) Keys() []string {
	return ix.t.keys()
}

// Clear releases every entry and the bucket array. The Index stays usable.
func (ix *Index) Clear() {
	ix.t.clear()
}
