// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/greetingvm/codec"
	"github.com/ava-labs/greetingvm/consts"
	"github.com/ava-labs/greetingvm/greeting"
	"github.com/ava-labs/greetingvm/program"
	"github.com/ava-labs/greetingvm/state"
)

// State
// 0x0/ (accounts)
//   -> [address] => owner|len(data)|data

const accountPrefix byte = 0x0

// MaxAccountDataLen bounds the space a single account may hold.
const MaxAccountDataLen = 10 * 1024 * 1024

// [accountPrefix] + [address]
func AccountKey(addr codec.Address) string {
	k := make([]byte, consts.ByteLen+codec.AddressLen)
	k[0] = accountPrefix
	copy(k[1:], addr[:])
	return string(k)
}

// GetAccount loads the account stored at [addr]. The returned account has
// no signer or writable flags set.
func GetAccount(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (*program.Account, error) {
	v, err := im.Get(ctx, AccountKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, addr)
	}
	if err != nil {
		return nil, err
	}
	return UnmarshalAccount(addr, v)
}

// GetAccountOrDefault behaves like [GetAccount] but returns an empty account
// owned by the system program if nothing is stored at [addr].
func GetAccountOrDefault(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (*program.Account, bool, error) {
	acct, err := GetAccount(ctx, im, addr)
	if errors.Is(err, ErrAccountNotFound) {
		return &program.Account{
			Key:   addr,
			Owner: codec.EmptyAddress,
			Data:  []byte{},
		}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return acct, true, nil
}

func SetAccount(
	ctx context.Context,
	mu state.Mutable,
	acct *program.Account,
) error {
	v, err := MarshalAccount(acct)
	if err != nil {
		return err
	}
	return mu.Put(ctx, AccountKey(acct.Key), v)
}

// GetCounter decodes the greeting record held by the account at [addr].
func GetCounter(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (uint32, error) {
	acct, err := GetAccount(ctx, im, addr)
	if err != nil {
		return 0, err
	}
	r, err := greeting.Unmarshal(acct.Data)
	if err != nil {
		return 0, err
	}
	return r.Counter, nil
}

func MarshalAccount(acct *program.Account) ([]byte, error) {
	if len(acct.Data) > MaxAccountDataLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrAccountDataTooLarge, len(acct.Data), MaxAccountDataLen)
	}
	p := &wrappers.Packer{
		MaxSize: codec.AddressLen + wrappers.IntLen + len(acct.Data),
		Bytes:   make([]byte, 0, codec.AddressLen+wrappers.IntLen+len(acct.Data)),
	}
	p.PackFixedBytes(acct.Owner[:])
	p.PackBytes(acct.Data)
	return p.Bytes, p.Err
}

func UnmarshalAccount(addr codec.Address, v []byte) (*program.Account, error) {
	p := &wrappers.Packer{Bytes: v}
	owner := p.UnpackFixedBytes(codec.AddressLen)
	data := p.UnpackBytes()
	if p.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptAccount, p.Err)
	}
	if p.Offset != len(v) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptAccount, len(v)-p.Offset)
	}
	acct := &program.Account{
		Key:  addr,
		Data: make([]byte, len(data)),
	}
	copy(acct.Owner[:], owner)
	copy(acct.Data, data)
	return acct, nil
}
