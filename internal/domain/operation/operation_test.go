package operation

import (
	"testing"

	"github.com/google/uuid"
	"gotest.tools/v3/assert"
)

func TestNewOperation(t *testing.T) {
	first := New(KindCreateTable, "db1.grades")
	second := New(KindRelationalInsert, "db1.grades")

	_, err := uuid.Parse(first.ID)
	assert.NilError(t, err)
	assert.Assert(t, first.ID != second.ID)
	assert.Assert(t, second.Seq > first.Seq)
	assert.Equal(t, first.Kind, KindCreateTable)
	assert.Equal(t, first.Target, "db1.grades")
	assert.Assert(t, !first.StartTime.IsZero())
	assert.Assert(t, first.Elapsed() >= 0)
}
