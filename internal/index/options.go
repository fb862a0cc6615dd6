package index

import "fmt"

const defaultMaxLoadFactor = 0.75

type options struct {
	fixed         bool
	maxLoadFactor float64
	maxKeyLength  int
}

func defaultOptions() options {
	return options{maxLoadFactor: defaultMaxLoadFactor}
}

func (o options) validate() error {
	if !o.fixed && o.maxLoadFactor <= 0 {
		return fmt.Errorf("max load factor must be positive, got %v", o.maxLoadFactor)
	}
	if o.maxKeyLength < 0 {
		return fmt.Errorf("max key length must not be negative, got %d", o.maxKeyLength)
	}
	return nil
}

// Option configures an Index or PresenceSet.
type Option func(*options)

// Fixed keeps the bucket count chosen at allocation for the whole lifetime.
// Chains simply get longer as entries are added.
func Fixed() Option {
	return func(o *options) {
		o.fixed = true
	}
}

// Grow rehashes into the next prime bucket count whenever an insert would
// push entries/buckets above maxLoadFactor. This is the default with 0.75.
func Grow(maxLoadFactor float64) Option {
	return func(o *options) {
		o.fixed = false
		o.maxLoadFactor = maxLoadFactor
	}
}

// WithMaxKeyLength rejects keys longer than n bytes. 0 means unbounded.
func WithMaxKeyLength(n int) Option {
	return func(o *options) {
		o.maxKeyLength = n
	}
}
