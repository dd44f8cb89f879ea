// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"golang.org/x/exp/maps"
)

var _ Mutable = (*SimpleMutable)(nil)

type changeOp struct {
	value  []byte
	delete bool
}

// SimpleMutable buffers changes on top of [db]. Nothing reaches [db] until
// [Commit] is called.
type SimpleMutable struct {
	db database.KeyValueReaderWriterDeleter

	changes map[string]changeOp
}

func NewSimpleMutable(db database.KeyValueReaderWriterDeleter) *SimpleMutable {
	return &SimpleMutable{db, make(map[string]changeOp)}
}

func (s *SimpleMutable) Get(_ context.Context, k string) ([]byte, error) {
	if v, ok := s.changes[k]; ok {
		if v.delete {
			return nil, database.ErrNotFound
		}
		return slices.Clone(v.value), nil
	}
	return s.db.Get([]byte(k))
}

func (s *SimpleMutable) Put(_ context.Context, k string, v []byte) error {
	s.changes[k] = changeOp{value: slices.Clone(v)}
	return nil
}

func (s *SimpleMutable) Delete(_ context.Context, k string) error {
	s.changes[k] = changeOp{delete: true}
	return nil
}

// Len returns the number of pending changes.
func (s *SimpleMutable) Len() int {
	return len(s.changes)
}

// Commit writes all pending changes to the underlying database in key order.
func (s *SimpleMutable) Commit(_ context.Context) error {
	keys := maps.Keys(s.changes)
	slices.Sort(keys)
	for _, k := range keys {
		op := s.changes[k]
		var err error
		if op.delete {
			err = s.db.Delete([]byte(k))
		} else {
			err = s.db.Put([]byte(k), op.value)
		}
		if err != nil {
			return err
		}
	}
	clear(s.changes)
	return nil
}

// Discard drops all pending changes.
func (s *SimpleMutable) Discard() {
	clear(s.changes)
}
