// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInvalidAddressLength  = errors.New("invalid address length")
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")
)
