// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"encoding/binary"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/near/borsh-go"
	"go.uber.org/zap"

	"github.com/ava-labs/greetingvm/codec"
	"github.com/ava-labs/greetingvm/consts"
	"github.com/ava-labs/greetingvm/program"
	"github.com/ava-labs/greetingvm/storage"
)

// System instructions are encoded as a little-endian uint32 tag followed by
// the borsh encoding of the instruction body.
const (
	CreateAccountWithSeedTag uint32 = 3
)

// CreateAccountWithSeed allocates [Space] zeroed bytes at the address derived
// from ([Base], [Seed], [Owner]) and assigns the account to [Owner].
//
// Accounts: [0] payer and base (signer), [1] new account (writable).
type CreateAccountWithSeed struct {
	Base  codec.Address
	Seed  string
	Space uint64
	Owner codec.Address
}

var _ program.Program = (*SystemProgram)(nil)

type SystemProgram struct {
	log logging.Logger
}

func NewSystemProgram(log logging.Logger) *SystemProgram {
	return &SystemProgram{log: log}
}

func (s *SystemProgram) Execute(
	_ codec.Address,
	accounts []*program.Account,
	data []byte,
) error {
	if len(data) < consts.Uint32Len {
		return fmt.Errorf("%w: missing system instruction tag", program.ErrInvalidPayload)
	}
	switch tag := binary.LittleEndian.Uint32(data); tag {
	case CreateAccountWithSeedTag:
		var ix CreateAccountWithSeed
		if err := borsh.Deserialize(&ix, data[consts.Uint32Len:]); err != nil {
			return fmt.Errorf("%w: %w", program.ErrInvalidPayload, err)
		}
		return s.createAccountWithSeed(accounts, &ix)
	default:
		return fmt.Errorf("%w: %w: %d", program.ErrInvalidPayload, ErrUnknownSystemCall, tag)
	}
}

func (s *SystemProgram) createAccountWithSeed(
	accounts []*program.Account,
	ix *CreateAccountWithSeed,
) error {
	payer, rest, err := program.NextAccount(accounts)
	if err != nil {
		return err
	}
	target, _, err := program.NextAccount(rest)
	if err != nil {
		return err
	}
	if !payer.IsSigner {
		return fmt.Errorf("%w: payer %s", program.ErrMissingSignature, payer.Key)
	}

	// Transactions carry a single signer, so the base must be the payer.
	if ix.Base != payer.Key {
		return fmt.Errorf("%w: base %s", program.ErrMissingSignature, ix.Base)
	}

	derived, err := codec.CreateAddressWithSeed(ix.Base, ix.Seed, ix.Owner)
	if err != nil {
		return fmt.Errorf("%w: %w", program.ErrInvalidSeeds, err)
	}
	if derived != target.Key {
		s.log.Info("create with seed address mismatch",
			zap.Stringer("expected", derived),
			zap.Stringer("provided", target.Key),
		)
		return fmt.Errorf("%w: %s != %s", program.ErrInvalidSeeds, derived, target.Key)
	}
	if target.Owner != SystemProgramID || len(target.Data) != 0 {
		return fmt.Errorf("%w: %s", program.ErrAccountAlreadyInUse, target.Key)
	}
	if ix.Space > storage.MaxAccountDataLen {
		return fmt.Errorf("%w: space %d exceeds %d", program.ErrInvalidPayload, ix.Space, storage.MaxAccountDataLen)
	}

	target.Data = make([]byte, ix.Space)
	target.Owner = ix.Owner
	s.log.Debug("created account with seed",
		zap.Stringer("account", target.Key),
		zap.Stringer("owner", ix.Owner),
		zap.Uint64("space", ix.Space),
	)
	return nil
}

// NewCreateAccountWithSeed builds the system instruction creating the
// account [Seed] derives for [owner] from the [payer] address.
func NewCreateAccountWithSeed(
	payer codec.Address,
	seed string,
	space uint64,
	owner codec.Address,
) (*Instruction, codec.Address, error) {
	target, err := codec.CreateAddressWithSeed(payer, seed, owner)
	if err != nil {
		return nil, codec.EmptyAddress, err
	}
	body, err := borsh.Serialize(CreateAccountWithSeed{
		Base:  payer,
		Seed:  seed,
		Space: space,
		Owner: owner,
	})
	if err != nil {
		return nil, codec.EmptyAddress, err
	}
	data := binary.LittleEndian.AppendUint32(nil, CreateAccountWithSeedTag)
	return &Instruction{
		ProgramID: SystemProgramID,
		Accounts: []AccountMeta{
			{Key: payer, IsSigner: true, IsWritable: true},
			{Key: target, IsWritable: true},
		},
		Data: append(data, body...),
	}, target, nil
}
