// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"
)

func TestSimpleMutable(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	db := memdb.New()
	require.NoError(db.Put([]byte("a"), []byte{1}))

	mu := NewSimpleMutable(db)
	v, err := mu.Get(ctx, "a")
	require.NoError(err)
	require.Equal([]byte{1}, v)

	require.NoError(mu.Put(ctx, "b", []byte{2}))
	require.NoError(mu.Delete(ctx, "a"))
	require.Equal(2, mu.Len())

	_, err = mu.Get(ctx, "a")
	require.ErrorIs(err, database.ErrNotFound)
	v, err = mu.Get(ctx, "b")
	require.NoError(err)
	require.Equal([]byte{2}, v)

	// Nothing reaches the database before commit.
	has, err := db.Has([]byte("a"))
	require.NoError(err)
	require.True(has)
	has, err = db.Has([]byte("b"))
	require.NoError(err)
	require.False(has)

	require.NoError(mu.Commit(ctx))
	require.Zero(mu.Len())
	has, err = db.Has([]byte("a"))
	require.NoError(err)
	require.False(has)
	v, err = db.Get([]byte("b"))
	require.NoError(err)
	require.Equal([]byte{2}, v)
}

func TestSimpleMutableDiscard(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	db := memdb.New()

	mu := NewSimpleMutable(db)
	require.NoError(mu.Put(ctx, "a", []byte{1}))
	mu.Discard()
	require.NoError(mu.Commit(ctx))

	has, err := db.Has([]byte("a"))
	require.NoError(err)
	require.False(has)
}

func TestSimpleMutableCopiesValues(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	mu := NewSimpleMutable(memdb.New())

	v := []byte{1, 2}
	require.NoError(mu.Put(ctx, "a", v))
	v[0] = 9

	got, err := mu.Get(ctx, "a")
	require.NoError(err)
	require.Equal([]byte{1, 2}, got)
}
