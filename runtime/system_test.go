// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/greetingvm/codec"
	"github.com/ava-labs/greetingvm/consts"
	"github.com/ava-labs/greetingvm/program"
)

func TestSystemProgramMalformed(t *testing.T) {
	payer := codec.CreateAddress(consts.ED25519ID, [32]byte{1})
	other := codec.CreateAddress(consts.ED25519ID, [32]byte{3})
	accounts := func() []*program.Account {
		return []*program.Account{
			{Key: payer, IsSigner: true, IsWritable: true},
			{Key: codec.CreateAddress(consts.SeedID, [32]byte{2}), IsWritable: true},
		}
	}

	tests := []struct {
		name        string
		data        []byte
		accounts    []*program.Account
		expectedErr error
	}{
		{
			name:        "missing tag",
			data:        []byte{3},
			accounts:    accounts(),
			expectedErr: program.ErrInvalidPayload,
		},
		{
			name:        "unknown tag",
			data:        binary.LittleEndian.AppendUint32(nil, 99),
			accounts:    accounts(),
			expectedErr: ErrUnknownSystemCall,
		},
		{
			name:        "missing accounts",
			data:        mustCreateData(t, payer, "seed"),
			accounts:    accounts()[:1],
			expectedErr: program.ErrMissingAccount,
		},
		{
			name: "unsigned payer",
			data: mustCreateData(t, payer, "seed"),
			accounts: func() []*program.Account {
				a := accounts()
				a[0].IsSigner = false
				return a
			}(),
			expectedErr: program.ErrMissingSignature,
		},
		{
			name: "base is not the payer",
			data: mustCreateData(t, other, "seed"),
			accounts: append(
				accounts(),
				&program.Account{Key: other, IsSigner: true},
			),
			expectedErr: program.ErrMissingSignature,
		},
		{
			name:        "seed too long",
			data:        mustCreateData(t, payer, strings.Repeat("s", consts.MaxSeedLen+1)),
			accounts:    accounts(),
			expectedErr: program.ErrInvalidSeeds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			s := NewSystemProgram(logging.NoLog{})
			err := s.Execute(SystemProgramID, tt.accounts, tt.data)
			require.ErrorIs(err, tt.expectedErr)
		})
	}
}

func TestNewCreateAccountWithSeed(t *testing.T) {
	require := require.New(t)
	payer := codec.CreateAddress(consts.ED25519ID, [32]byte{1})

	ix, target, err := NewCreateAccountWithSeed(payer, "hello 123", 4, greeterID)
	require.NoError(err)
	expected, err := codec.CreateAddressWithSeed(payer, "hello 123", greeterID)
	require.NoError(err)
	require.Equal(expected, target)
	require.Equal(SystemProgramID, ix.ProgramID)
	require.Equal(CreateAccountWithSeedTag, binary.LittleEndian.Uint32(ix.Data))

	accounts := []*program.Account{
		{Key: payer, IsSigner: true, IsWritable: true},
		{Key: target, IsWritable: true},
	}
	require.NoError(NewSystemProgram(logging.NoLog{}).Execute(SystemProgramID, accounts, ix.Data))
	require.Equal(greeterID, accounts[1].Owner)
	require.Equal([]byte{0, 0, 0, 0}, accounts[1].Data)

	_, _, err = NewCreateAccountWithSeed(payer, strings.Repeat("s", consts.MaxSeedLen+1), 4, greeterID)
	require.ErrorIs(err, codec.ErrMaxSeedLengthExceeded)
}

// mustCreateData encodes a create with seed instruction without deriving the
// target, so invalid seeds reach the system program.
func mustCreateData(t *testing.T, base codec.Address, seed string) []byte {
	ix := CreateAccountWithSeed{
		Base:  base,
		Seed:  seed,
		Space: 4,
		Owner: greeterID,
	}
	body, err := borsh.Serialize(ix)
	require.NoError(t, err)
	return append(binary.LittleEndian.AppendUint32(nil, CreateAccountWithSeedTag), body...)
}
