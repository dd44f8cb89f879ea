// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

const (
	IDLen      = 32
	ByteLen    = 1
	Uint32Len  = 4
	Uint64Len  = 8
	MaxUint32  = ^uint32(0)
	MaxSeedLen = 32
)

// Address type prefixes. Every address starts with one of these so keys
// derived from different sources can never collide.
const (
	ED25519ID uint8 = 0
	SeedID    uint8 = 1
	ProgramID uint8 = 2
)

const (
	Name = "greetingvm"

	// GreeterProgram names the greeter program deployed by default.
	GreeterProgram = "greeter"
)

var ID ids.ID

func init() {
	b := make([]byte, IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
