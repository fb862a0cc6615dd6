package index

import (
	"slices"
	"sort"

	domainerrors "github.com/leengari/colstore/internal/domain/errors"
)

type entry[V any] struct {
	key   string
	value V
}

// chainTable is the open-chaining table shared by Index and PresenceSet.
// Each bucket owns its chain as a slice; new keys go to the end of the
// slice and lookups walk it backwards, so the newest key in a bucket is
// always found first.
type chainTable[V any] struct {
	buckets   [][]entry[V]
	requested int
	count     int
	opts      options
}

func newChainTable[V any](op string, capacity int, opts []Option) (*chainTable[V], error) {
	if capacity < 1 {
		return nil, domainerrors.NewInvalidArgument(op, "", "capacity must be positive")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, &domainerrors.Error{Kind: domainerrors.KindInvalidArgument, Op: op, Err: err}
	}

	return &chainTable[V]{
		buckets:   make([][]entry[V], primeAtLeast(capacity)),
		requested: capacity,
		opts:      o,
	}, nil
}

func (t *chainTable[V]) checkKey(op, key string) error {
	if key == "" {
		return domainerrors.NewInvalidArgument(op, key, "key must not be empty")
	}
	if t.opts.maxKeyLength > 0 && len(key) > t.opts.maxKeyLength {
		return domainerrors.NewNameTooLong(op, key, t.opts.maxKeyLength)
	}
	return nil
}

func (t *chainTable[V]) bucketOf(key string) int {
	return int(oneAtATime(key) % uint32(len(t.buckets)))
}

// find returns the bucket of key and the key's position in that chain
// (-1 if absent).
func (t *chainTable[V]) find(key string) (int, int) {
	b := t.bucketOf(key)
	chain := t.buckets[b]
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].key == key {
			return b, i
		}
	}
	return b, -1
}

func (t *chainTable[V]) get(key string) (V, bool) {
	b, i := t.find(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	return t.buckets[b][i].value, true
}

// put adds key or, when overwrite is set, replaces the value of an existing
// key. It reports whether a new entry was created.
func (t *chainTable[V]) put(key string, value V, overwrite bool) bool {
	b, i := t.find(key)
	if i >= 0 {
		if overwrite {
			t.buckets[b][i].value = value
		}
		return false
	}

	if t.needsGrowth() {
		t.rehash(primeAtLeast(len(t.buckets) + 1))
		b = t.bucketOf(key)
	}

	t.buckets[b] = append(t.buckets[b], entry[V]{key: key, value: value})
	t.count++
	return true
}

func (t *chainTable[V]) needsGrowth() bool {
	if t.opts.fixed {
		return false
	}
	if len(t.buckets) == goodPrimes[len(goodPrimes)-1] {
		return false
	}
	return float64(t.count+1)/float64(len(t.buckets)) > t.opts.maxLoadFactor
}

func (t *chainTable[V]) rehash(buckets int) {
	old := t.buckets
	t.buckets = make([][]entry[V], buckets)
	for _, chain := range old {
		for _, e := range chain {
			b := t.bucketOf(e.key)
			t.buckets[b] = append(t.buckets[b], e)
		}
	}
}

func (t *chainTable[V]) remove(key string) bool {
	b, i := t.find(key)
	if i < 0 {
		return false
	}
	t.buckets[b] = slices.Delete(t.buckets[b], i, i+1)
	if len(t.buckets[b]) == 0 {
		t.buckets[b] = nil
	}
	t.count--
	return true
}

// clear drops every chain and the bucket array, then starts over at the
// originally requested size.
func (t *chainTable[V]) clear() {
	t.buckets = make([][]entry[V], primeAtLeast(t.requested))
	t.count = 0
}

func (t *chainTable[V]) keys() []string {
	keys := make([]string, 0, t.count)
	for _, chain := range t.buckets {
		for _, e := range chain {
			keys = append(keys, e.key)
		}
	}
	sort.Strings(keys)
	return keys
}
