package schema

import (
	"testing"

	domainerrors "github.com/leengari/colstore/internal/domain/errors"
	"github.com/leengari/colstore/internal/storage"
	"gotest.tools/v3/assert"
)

// newTestTable builds db1.grades with the given columns already created.
func newTestTable(t *testing.T, columns ...string) *Table {
	t.Helper()
	tbl, err := NewTable("db1.grades", len(columns))
	assert.NilError(t, err)
	for _, name := range columns {
		_, err := tbl.AddColumn(NewColumn(Qualify(tbl.Name, name)))
		assert.NilError(t, err)
	}
	return tbl
}

func TestNewTable(t *testing.T) {
	tbl, err := NewTable("db1.grades", 3)
	assert.NilError(t, err)

	assert.Equal(t, tbl.DeclaredColumns(), 3)
	assert.Equal(t, tbl.ColumnSlots(), 3)
	assert.Equal(t, tbl.ColumnCount(), 0)
	assert.Equal(t, tbl.Length(), 0)
	assert.Equal(t, tbl.RowCapacity(), 0)
	assert.Assert(t, !tbl.Complete())

	_, err = NewTable("db1.bad", -1)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestAddColumn(t *testing.T) {
	tbl, err := NewTable("db1.grades", 2)
	assert.NilError(t, err)

	pos, err := tbl.AddColumn(NewColumn("db1.grades.c1"))
	assert.NilError(t, err)
	assert.Equal(t, pos, 0)

	_, err = tbl.AddColumn(NewColumn("db1.grades.c1"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateName)

	pos, err = tbl.AddColumn(NewColumn("db1.grades.c2"))
	assert.NilError(t, err)
	assert.Equal(t, pos, 1)

	_, err = tbl.AddColumn(NewColumn("db1.grades.c3"))
	assert.ErrorIs(t, err, domainerrors.ErrTooManyColumns)
	assert.Equal(t, tbl.ColumnCount(), 2)

	pos, ok := tbl.ColumnPosition("db1.grades.c2")
	assert.Assert(t, ok)
	assert.Equal(t, pos, 1)
	col, ok := tbl.Column(pos)
	assert.Assert(t, ok)
	assert.Equal(t, col.Name, "db1.grades.c2")
	assert.Assert(t, !col.Allocated(), "storage is allocated on first insert")
}

func TestAppendRow(t *testing.T) {
	tbl := newTestTable(t, "c1", "c2", "c3")

	assert.NilError(t, tbl.AppendRow([]Value{10, 20, 30}, 4, nil))
	assert.NilError(t, tbl.AppendRow([]Value{11, 21, 31}, 4, nil))

	assert.Equal(t, tbl.Length(), 2)
	assert.Equal(t, tbl.RowCapacity(), 4)

	want := [][]Value{{10, 11}, {20, 21}, {30, 31}}
	for i, col := range tbl.Columns() {
		assert.Equal(t, col.Len(), 2)
		assert.Equal(t, col.Cap(), 4)
		assert.DeepEqual(t, col.Values(), want[i])
	}
}

func TestAppendRowGrowth(t *testing.T) {
	tbl := newTestTable(t, "a", "b")

	const rows = 20 // initial 4 -> 8 -> 16 -> 32: three growth events
	for i := 0; i < rows; i++ {
		assert.NilError(t, tbl.AppendRow([]Value{Value(i), Value(-i)}, 4, nil))
	}

	assert.Equal(t, tbl.Length(), rows)
	assert.Equal(t, tbl.RowCapacity(), 32)

	a, _ := tbl.Column(0)
	b, _ := tbl.Column(1)
	for i := 0; i < rows; i++ {
		assert.Equal(t, a.At(i), Value(i))
		assert.Equal(t, b.At(i), Value(-i))
	}
}

func TestAppendRowRejectsBadInput(t *testing.T) {
	t.Run("nil values", func(t *testing.T) {
		tbl := newTestTable(t, "a")
		err := tbl.AppendRow(nil, 4, nil)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})

	t.Run("wrong arity", func(t *testing.T) {
		tbl := newTestTable(t, "a", "b")
		err := tbl.AppendRow([]Value{1}, 4, nil)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
		assert.Equal(t, tbl.Length(), 0)
	})

	t.Run("incomplete schema", func(t *testing.T) {
		tbl, err := NewTable("db1.partial", 2)
		assert.NilError(t, err)
		_, err = tbl.AddColumn(NewColumn("db1.partial.a"))
		assert.NilError(t, err)

		err = tbl.AppendRow([]Value{1}, 4, nil)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}

func TestAppendRowOutOfMemoryIsAtomic(t *testing.T) {
	tbl := newTestTable(t, "a", "b", "c")
	// Room for the first allocation (3 x 2) but not for doubling all
	// three columns while the old buffers are still held.
	budget := storage.NewBudget(14)

	assert.NilError(t, tbl.AppendRow([]Value{1, 2, 3}, 2, budget))
	assert.NilError(t, tbl.AppendRow([]Value{4, 5, 6}, 2, budget))
	assert.Equal(t, budget.Used(), 6)

	err := tbl.AppendRow([]Value{7, 8, 9}, 2, budget)
	assert.ErrorIs(t, err, domainerrors.ErrOutOfMemory)

	assert.Equal(t, tbl.Length(), 2)
	assert.Equal(t, tbl.RowCapacity(), 2)
	assert.Equal(t, budget.Used(), 6, "staged buffers must be released")
	for _, col := range tbl.Columns() {
		assert.Equal(t, col.Len(), 2)
		assert.Equal(t, col.Cap(), 2)
	}
	a, _ := tbl.Column(0)
	assert.DeepEqual(t, a.Values(), []Value{1, 4})
}

func TestZeroColumnTable(t *testing.T) {
	tbl, err := NewTable("db1.empty", 0)
	assert.NilError(t, err)
	assert.Assert(t, tbl.Complete())

	assert.NilError(t, tbl.AppendRow([]Value{}, 4, nil))
	assert.Equal(t, tbl.Length(), 1)
}
