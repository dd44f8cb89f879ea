// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/greetingvm/codec"
	"github.com/ava-labs/greetingvm/consts"
	"github.com/ava-labs/greetingvm/greeting"
	"github.com/ava-labs/greetingvm/program"
	"github.com/ava-labs/greetingvm/state"
)

func TestAccountRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	mu := state.NewSimpleMutable(memdb.New())

	addr := codec.CreateAddress(consts.SeedID, ids.GenerateTestID())
	owner := codec.ProgramAddress(consts.GreeterProgram)

	_, err := GetAccount(ctx, mu, addr)
	require.ErrorIs(err, ErrAccountNotFound)

	acct, exists, err := GetAccountOrDefault(ctx, mu, addr)
	require.NoError(err)
	require.False(exists)
	require.Equal(codec.EmptyAddress, acct.Owner)
	require.Empty(acct.Data)

	require.NoError(SetAccount(ctx, mu, &program.Account{
		Key:   addr,
		Owner: owner,
		Data:  []byte{0x07, 0x00, 0x00, 0x00},
	}))

	acct, exists, err = GetAccountOrDefault(ctx, mu, addr)
	require.NoError(err)
	require.True(exists)
	require.Equal(addr, acct.Key)
	require.Equal(owner, acct.Owner)
	require.Equal([]byte{0x07, 0x00, 0x00, 0x00}, acct.Data)
	require.False(acct.IsSigner)
	require.False(acct.IsWritable)

	counter, err := GetCounter(ctx, mu, addr)
	require.NoError(err)
	require.Equal(uint32(7), counter)
}

func TestGetCounterInvalidData(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	mu := state.NewSimpleMutable(memdb.New())

	addr := codec.CreateAddress(consts.SeedID, ids.GenerateTestID())
	require.NoError(SetAccount(ctx, mu, &program.Account{Key: addr, Data: []byte{1}}))

	_, err := GetCounter(ctx, mu, addr)
	require.ErrorIs(err, greeting.ErrInsufficientLength)
}

func TestUnmarshalAccountCorrupt(t *testing.T) {
	require := require.New(t)
	addr := codec.CreateAddress(consts.SeedID, ids.GenerateTestID())

	_, err := UnmarshalAccount(addr, []byte{1, 2, 3})
	require.ErrorIs(err, ErrCorruptAccount)

	v, err := MarshalAccount(&program.Account{Key: addr, Data: []byte{1}})
	require.NoError(err)
	_, err = UnmarshalAccount(addr, append(v, 0))
	require.ErrorIs(err, ErrCorruptAccount)
}
