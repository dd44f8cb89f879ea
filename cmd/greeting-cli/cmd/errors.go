// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrDuplicate         = errors.New("duplicate")
	ErrNoKeys            = errors.New("no available keys, run `key generate` first")
	ErrArgumentCount     = errors.New("unexpected number of arguments")
	ErrMissingSubcommand = errors.New("must specify a subcommand")
	ErrInstructionFailed = errors.New("instruction failed")
)
