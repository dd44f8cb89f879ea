// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state holds the key/value views the runtime executes against.
// Keys are strings so pending account writes can be kept in a map and
// committed in key order.
package state

import "context"

// Immutable is read access to accounts and CLI metadata.
type Immutable interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Mutable is the view a transaction writes to. Nothing written through it
// is durable until the owner of the view commits it.
type Mutable interface {
	Immutable

	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
