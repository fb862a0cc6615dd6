package storage

import (
	"errors"
	"fmt"
)

var ErrBudgetExceeded = errors.New("memory budget exceeded")

// Budget caps the number of column cells allocated across a catalog.
// A nil *Budget or a zero limit never refuses an allocation.
type Budget struct {
	limit int
	used  int
}

func NewBudget(limit int) *Budget {
	return &Budget{limit: limit}
}

// Reserve claims cells or returns ErrBudgetExceeded without claiming anything.
func (b *Budget) Reserve(cells int) error {
	if b == nil {
		return nil
	}
	if b.limit > 0 && b.used+cells > b.limit {
		return fmt.Errorf("%w: need %d cells, %d of %d in use", ErrBudgetExceeded, cells, b.used, b.limit)
	}
	b.used += cells
	return nil
}

func (b *Budget) Release(cells int) {
	if b == nil {
		return
	}
	b.used -= cells
	if b.used < 0 {
		b.used = 0
	}
}

func (b *Budget) Used() int {
	if b == nil {
		return 0
	}
	return b.used
}

func (b *Budget) Limit() int {
	if b == nil {
		return 0
	}
	return b.limit
}
