// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"

	"github.com/ava-labs/greetingvm/consts"
)

const AddressLen = 33

// Address represents the 33 byte address of a greetingvm account: a type
// prefix followed by a 32 byte id.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// CreateAddress returns [Address] made from concatenating
// [typeID] with [id].
func CreateAddress(typeID uint8, id ids.ID) Address {
	a := make([]byte, AddressLen)
	a[0] = typeID
	copy(a[1:], id[:])
	return Address(a)
}

// CreateAddressWithSeed derives the address of an account owned by [owner]
// from a [base] address and a human readable [seed]. The same inputs always
// produce the same address.
func CreateAddressWithSeed(base Address, seed string, owner Address) (Address, error) {
	if len(seed) > consts.MaxSeedLen {
		return EmptyAddress, fmt.Errorf("%w: %d > %d", ErrMaxSeedLengthExceeded, len(seed), consts.MaxSeedLen)
	}
	b := make([]byte, 0, AddressLen*2+len(seed))
	b = append(b, base[:]...)
	b = append(b, seed...)
	b = append(b, owner[:]...)
	return CreateAddress(consts.SeedID, hashing.ComputeHash256Array(b)), nil
}

// ProgramAddress returns the deterministic identity of the program called [name].
func ProgramAddress(name string) Address {
	return CreateAddress(consts.ProgramID, hashing.ComputeHash256Array([]byte(name)))
}

// ParseAddress decodes a hex address, with or without the 0x prefix.
func ParseAddress(s string) (Address, error) {
	var a Address
	if err := a.UnmarshalText([]byte(s)); err != nil {
		return EmptyAddress, err
	}
	return a, nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	if len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X') {
		input = input[2:]
	}
	decoded, err := hex.DecodeString(string(input))
	if err != nil {
		return err
	}
	if len(decoded) != AddressLen {
		return fmt.Errorf("%w: %d != %d", ErrInvalidAddressLength, len(decoded), AddressLen)
	}
	copy(a[:], decoded)
	return nil
}
