// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package greeter implements the greeting counter program: each invocation
// adds the counter carried by the instruction to the counter stored in the
// first account.
package greeter

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/greetingvm/codec"
	"github.com/ava-labs/greetingvm/greeting"
	"github.com/ava-labs/greetingvm/program"
)

var _ program.Program = (*Greeter)(nil)

type Greeter struct {
	log logging.Logger
}

func New(log logging.Logger) *Greeter {
	return &Greeter{log: log}
}

func (g *Greeter) Execute(
	programID codec.Address,
	accounts []*program.Account,
	data []byte,
) error {
	account, _, err := program.NextAccount(accounts)
	if err != nil {
		return err
	}

	g.log.Debug("start the decode")
	received, err := greeting.Unmarshal(data)
	if err != nil {
		g.log.Info("failed to decode instruction data",
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", program.ErrInvalidPayload, err)
	}
	g.log.Debug("greeting passed",
		zap.Uint32("counter", received.Counter),
	)

	if account.Owner != programID {
		g.log.Info("wrong permissions",
			zap.Stringer("account", account.Key),
			zap.Stringer("owner", account.Owner),
			zap.Stringer("programID", programID),
		)
		return program.ErrPermissionDenied
	}

	// Storage is pre-sized by whoever created the account. Check it before
	// decoding so an undersized account never looks like a corrupt one.
	if len(account.Data) < greeting.RecordLen {
		return fmt.Errorf("%w: %d < %d", program.ErrBufferTooSmall, len(account.Data), greeting.RecordLen)
	}
	stored, err := greeting.Unmarshal(account.Data)
	if err != nil {
		g.log.Info("failed to decode account data",
			zap.Stringer("account", account.Key),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", program.ErrInvalidPayload, err)
	}

	stored.Add(received.Counter)
	if err := stored.MarshalInto(account.Data); err != nil {
		return fmt.Errorf("%w: %w", program.ErrBufferTooSmall, err)
	}

	g.log.Info("greeted",
		zap.Stringer("account", account.Key),
		zap.Uint32("counter", stored.Counter),
	)
	return nil
}
