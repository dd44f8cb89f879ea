// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package program defines the contract between the host runtime and the
// programs it executes.
package program

import "github.com/ava-labs/greetingvm/codec"

// Account is a host managed byte buffer handed to a program for the
// duration of a single invocation.
type Account struct {
	Key   codec.Address
	Owner codec.Address
	Data  []byte

	IsSigner   bool
	IsWritable bool
}

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE} -destination=mock_program.go . Program

// Program is invoked by the host with its own identity, the accounts
// referenced by the instruction (in order) and the raw instruction data.
type Program interface {
	Execute(programID codec.Address, accounts []*Account, data []byte) error
}

// NextAccount returns the head of [accounts] and the remaining accounts.
func NextAccount(accounts []*Account) (*Account, []*Account, error) {
	if len(accounts) == 0 {
		return nil, nil, ErrMissingAccount
	}
	return accounts[0], accounts[1:], nil
}
