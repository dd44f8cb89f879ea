// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "errors"

var (
	ErrMissingAuth        = errors.New("missing auth")
	ErrMissingInstruction = errors.New("missing instruction")
	ErrDuplicateProgram   = errors.New("duplicate program")
	ErrUnknownSystemCall  = errors.New("unknown system instruction")
)
