package index

import (
	domainerrors "github.com/leengari/colstore/internal/domain/errors"
)

// PresenceSet records which string keys exist, without associated values.
type PresenceSet struct {
	t *chainTable[struct{}]
}

func NewPresenceSet(capacity int, opts ...Option) (*PresenceSet, error) {
	t, err := newChainTable[struct{}]("set_allocate", capacity, opts)
	if err != nil {
		return nil, err
	}
	return &PresenceSet{t: t}, nil
}

// Insert adds key. Adding a key that is already present is a no-op;
// the returned bool reports whether key was new.
func (s *PresenceSet) Insert(key string) (bool, error) {
	if err := s.t.checkKey("set_insert", key); err != nil {
		return false, err
	}
	return s.t.put(key, struct{}{}, false), nil
}

func (s *PresenceSet) IsPresent(key string) bool {
	_, ok := s.t.get(key)
	return ok
}

func (s *PresenceSet) Remove(key string) error {
	if !s.t.remove(key) {
		return domainerrors.NewNotFound("set_remove", key)
	}
	return nil
}

func (s *PresenceSet) Len() int {
	return s.t.count
}

func (s *PresenceSet) Buckets() int {
	return len(s.t.buckets)
}

func (s *PresenceSet) Clear() {
	s.t.clear()
}
