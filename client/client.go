// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/greetingvm/auth"
	"github.com/ava-labs/greetingvm/codec"
	"github.com/ava-labs/greetingvm/greeting"
	"github.com/ava-labs/greetingvm/runtime"
	"github.com/ava-labs/greetingvm/state"
	"github.com/ava-labs/greetingvm/storage"
)

// Client signs greeter transactions with a single key and submits them to
// a local runtime. Each successful transaction is committed to [db] on its
// own; failed transactions change nothing.
type Client struct {
	rt        *runtime.Runtime
	db        database.KeyValueReaderWriterDeleter
	factory   *auth.ED25519Factory
	programID codec.Address
}

func New(
	rt *runtime.Runtime,
	db database.KeyValueReaderWriterDeleter,
	factory *auth.ED25519Factory,
	programID codec.Address,
) *Client {
	return &Client{
		rt:        rt,
		db:        db,
		factory:   factory,
		programID: programID,
	}
}

// Payer is the address paying for and signing every transaction.
func (c *Client) Payer() codec.Address {
	return c.factory.Address()
}

// GreetedAddress returns the account [seed] derives for the greeter program.
func (c *Client) GreetedAddress(seed string) (codec.Address, error) {
	return codec.CreateAddressWithSeed(c.Payer(), seed, c.programID)
}

// CreateGreetedAccount allocates a greeter owned account of [space] bytes at
// the address derived from [seed].
func (c *Client) CreateGreetedAccount(
	ctx context.Context,
	seed string,
	space uint64,
) (codec.Address, *runtime.Result, error) {
	ix, target, err := runtime.NewCreateAccountWithSeed(c.Payer(), seed, space, c.programID)
	if err != nil {
		return codec.EmptyAddress, nil, err
	}
	result, err := c.submit(ctx, ix)
	return target, result, err
}

// Greet adds [counter] to the counter stored at [target].
func (c *Client) Greet(
	ctx context.Context,
	target codec.Address,
	counter uint32,
) (*runtime.Result, error) {
	ix, err := GreetInstruction(c.programID, target, counter)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, ix)
}

// Counter reads the counter currently stored at [target].
func (c *Client) Counter(ctx context.Context, target codec.Address) (uint32, error) {
	return storage.GetCounter(ctx, state.NewSimpleMutable(c.db), target)
}

func (c *Client) submit(ctx context.Context, ix *runtime.Instruction) (*runtime.Result, error) {
	tx, err := runtime.Sign(ix, c.factory)
	if err != nil {
		return nil, err
	}
	mu := state.NewSimpleMutable(c.db)
	result, err := c.rt.Execute(ctx, mu, tx)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}
	return result, mu.Commit(ctx)
}

// GreetInstruction builds the instruction adding [counter] to [target].
func GreetInstruction(
	programID codec.Address,
	target codec.Address,
	counter uint32,
) (*runtime.Instruction, error) {
	data, err := (&greeting.Record{Counter: counter}).Marshal()
	if err != nil {
		return nil, err
	}
	return &runtime.Instruction{
		ProgramID: programID,
		Accounts: []runtime.AccountMeta{
			{Key: target, IsWritable: true},
		},
		Data: data,
	}, nil
}
