package index

import (
	"fmt"
	"testing"

	domainerrors "github.com/leengari/colstore/internal/domain/errors"
	"gotest.tools/v3/assert"
)

func TestPresenceSetInsertIsIdempotent(t *testing.T) {
	s, err := NewPresenceSet(10)
	assert.NilError(t, err)

	added, err := s.Insert("db1.grades")
	assert.NilError(t, err)
	assert.Assert(t, added)
	assert.Equal(t, s.Len(), 1)

	added, err = s.Insert("db1.grades")
	assert.NilError(t, err)
	assert.Assert(t, !added)
	assert.Assert(t, s.IsPresent("db1.grades"))
	assert.Equal(t, s.Len(), 1)
}

func TestPresenceSetMembership(t *testing.T) {
	s, err := NewPresenceSet(3, Fixed())
	assert.NilError(t, err)

	for i := 0; i < 10; i++ {
		_, err := s.Insert(fmt.Sprintf("k%d", i))
		assert.NilError(t, err)
	}

	assert.Assert(t, s.IsPresent("k0"))
	assert.Assert(t, s.IsPresent("k9"))
	assert.Assert(t, !s.IsPresent("k10"))
	assert.Assert(t, !s.IsPresent(""))
}

func TestPresenceSetRemove(t *testing.T) {
	s, err := NewPresenceSet(10)
	assert.NilError(t, err)

	_, err = s.Insert("x")
	assert.NilError(t, err)
	assert.NilError(t, s.Remove("x"))
	assert.Assert(t, !s.IsPresent("x"))

	assert.ErrorIs(t, s.Remove("x"), domainerrors.ErrNotFound)
}

func TestPresenceSetKeyBound(t *testing.T) {
	s, err := NewPresenceSet(10, WithMaxKeyLength(3))
	assert.NilError(t, err)

	_, err = s.Insert("abcd")
	assert.ErrorIs(t, err, domainerrors.ErrNameTooLong)
	assert.Equal(t, s.Len(), 0)
}

func TestPresenceSetGrowsAndClears(t *testing.T) {
	s, err := NewPresenceSet(53)
	assert.NilError(t, err)

	for i := 0; i < 40; i++ {
		_, err := s.Insert(fmt.Sprintf("name%d", i))
		assert.NilError(t, err)
	}
	assert.Equal(t, s.Buckets(), 97)

	s.Clear()
	assert.Equal(t, s.Len(), 0)
	assert.Equal(t, s.Buckets(), 53)
	assert.Assert(t, !s.IsPresent("name0"))
}
