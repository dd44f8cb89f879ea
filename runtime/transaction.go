// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/near/borsh-go"

	"github.com/ava-labs/greetingvm/auth"
	"github.com/ava-labs/greetingvm/codec"
)

type AccountMeta struct {
	Key        codec.Address `json:"key"`
	IsSigner   bool          `json:"isSigner"`
	IsWritable bool          `json:"isWritable"`
}

// Instruction asks [ProgramID] to process [Data] against [Accounts].
type Instruction struct {
	ProgramID codec.Address `json:"programID"`
	Accounts  []AccountMeta `json:"accounts"`
	Data      []byte        `json:"data"`
}

// Digest returns the bytes a transaction signer commits to.
func (i *Instruction) Digest() ([]byte, error) {
	return borsh.Serialize(*i)
}

type Transaction struct {
	Instruction *Instruction  `json:"instruction"`
	Auth        *auth.ED25519 `json:"auth"`
}

// Sign builds a transaction for [instruction] authorized by [factory].
func Sign(instruction *Instruction, factory *auth.ED25519Factory) (*Transaction, error) {
	digest, err := instruction.Digest()
	if err != nil {
		return nil, err
	}
	return &Transaction{
		Instruction: instruction,
		Auth:        factory.Sign(digest),
	}, nil
}

// Result is the outcome of a transaction that was valid enough to reach a
// program. A failed result never has state changes.
type Result struct {
	Success bool   `json:"success"`
	Code    uint32 `json:"code"`
	Error   []byte `json:"error"`
}
