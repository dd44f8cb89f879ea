// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrCorruptAccount      = errors.New("corrupt account")
	ErrAccountDataTooLarge = errors.New("account data too large")
)
