// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package runtime is an in-process host for programs: it authorizes
// transactions, loads the accounts an instruction references, dispatches to
// the target program and persists the accounts it changed.
package runtime

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/greetingvm/codec"
	"github.com/ava-labs/greetingvm/program"
	"github.com/ava-labs/greetingvm/state"
	"github.com/ava-labs/greetingvm/storage"
)

// SystemProgramID is the owner of every account that has not been assigned
// to a program yet.
var SystemProgramID = codec.EmptyAddress

type Runtime struct {
	log     logging.Logger
	tracer  trace.Tracer
	metrics *metrics

	programs map[codec.Address]program.Program
}

func New(
	log logging.Logger,
	tracer trace.Tracer,
	registerer prometheus.Registerer,
) (*Runtime, error) {
	metrics, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	r := &Runtime{
		log:      log,
		tracer:   tracer,
		metrics:  metrics,
		programs: map[codec.Address]program.Program{},
	}
	return r, r.Register(SystemProgramID, NewSystemProgram(log))
}

// Register makes [p] callable at [programID].
func (r *Runtime) Register(programID codec.Address, p program.Program) error {
	if _, ok := r.programs[programID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateProgram, programID)
	}
	r.programs[programID] = p
	return nil
}

// snapshot is the state of an account before a program ran.
type snapshot struct {
	account *program.Account
	owner   codec.Address
	data    []byte
	exists  bool
}

// Execute runs [tx] against [mu]. An error is returned only if the
// transaction is malformed or state could not be accessed; program failures
// are reported in the [Result] and leave [mu] untouched.
func (r *Runtime) Execute(
	ctx context.Context,
	mu state.Mutable,
	tx *Transaction,
) (*Result, error) {
	ctx, span := r.tracer.Start(ctx, "Runtime.Execute")
	defer span.End()

	if tx.Instruction == nil {
		return nil, ErrMissingInstruction
	}
	if tx.Auth == nil {
		return nil, ErrMissingAuth
	}
	digest, err := tx.Instruction.Digest()
	if err != nil {
		return nil, err
	}
	if err := tx.Auth.Verify(digest); err != nil {
		return nil, err
	}
	actor := tx.Auth.Actor()
	ix := tx.Instruction
	span.SetAttributes(
		attribute.Stringer("program", ix.ProgramID),
		attribute.Stringer("actor", actor),
		attribute.Int("accounts", len(ix.Accounts)),
	)

	p, ok := r.programs[ix.ProgramID]
	if !ok {
		return r.fail(span, ix, fmt.Errorf("%w: %s", program.ErrUnknownProgram, ix.ProgramID)), nil
	}

	accounts, snapshots, err := r.loadAccounts(ctx, mu, ix.Accounts)
	if err != nil {
		return nil, err
	}
	for _, s := range snapshots {
		if s.account.IsSigner && s.account.Key != actor {
			return r.fail(span, ix, fmt.Errorf("%w: %s", program.ErrMissingSignature, s.account.Key)), nil
		}
	}

	if err := p.Execute(ix.ProgramID, accounts, ix.Data); err != nil {
		return r.fail(span, ix, err), nil
	}
	if err := verifyChanges(ix.ProgramID, snapshots); err != nil {
		return r.fail(span, ix, err), nil
	}

	written := 0
	for _, s := range snapshots {
		if s.exists && s.owner == s.account.Owner && bytes.Equal(s.data, s.account.Data) {
			continue
		}
		if !s.exists && s.account.Owner == SystemProgramID && len(s.account.Data) == 0 {
			continue
		}
		if err := storage.SetAccount(ctx, mu, s.account); err != nil {
			return nil, err
		}
		written++
	}
	r.metrics.executed.Inc()
	r.metrics.written.Add(float64(written))
	r.log.Debug("instruction executed",
		zap.Stringer("program", ix.ProgramID),
		zap.Stringer("actor", actor),
		zap.Int("written", written),
	)
	return &Result{Success: true}, nil
}

// loadAccounts resolves [metas] into the accounts handed to a program.
// Repeated keys share one account whose flags are the union of every
// reference.
func (r *Runtime) loadAccounts(
	ctx context.Context,
	im state.Immutable,
	metas []AccountMeta,
) ([]*program.Account, []*snapshot, error) {
	var (
		accounts  = make([]*program.Account, 0, len(metas))
		snapshots = make([]*snapshot, 0, len(metas))
		byKey     = make(map[codec.Address]*program.Account, len(metas))
	)
	for _, meta := range metas {
		if acct, ok := byKey[meta.Key]; ok {
			acct.IsSigner = acct.IsSigner || meta.IsSigner
			acct.IsWritable = acct.IsWritable || meta.IsWritable
			accounts = append(accounts, acct)
			continue
		}
		acct, exists, err := storage.GetAccountOrDefault(ctx, im, meta.Key)
		if err != nil {
			return nil, nil, err
		}
		acct.IsSigner = meta.IsSigner
		acct.IsWritable = meta.IsWritable
		byKey[meta.Key] = acct
		accounts = append(accounts, acct)
		snapshots = append(snapshots, &snapshot{
			account: acct,
			owner:   acct.Owner,
			data:    bytes.Clone(acct.Data),
			exists:  exists,
		})
	}
	return accounts, snapshots, nil
}

// verifyChanges enforces what a program may do to the accounts it was
// given. Only the system program may allocate space for or assign an owner
// to an account, and only while that account is still unallocated.
func verifyChanges(programID codec.Address, snapshots []*snapshot) error {
	for _, s := range snapshots {
		acct := s.account
		fresh := s.owner == SystemProgramID && len(s.data) == 0
		allocating := programID == SystemProgramID && fresh

		if acct.Owner != s.owner && !allocating {
			return fmt.Errorf("%w: %s", program.ErrOwnerModified, acct.Key)
		}
		if len(acct.Data) != len(s.data) && !allocating {
			return fmt.Errorf("%w: %s", program.ErrAccountDataSizeChanged, acct.Key)
		}
		if bytes.Equal(acct.Data, s.data) {
			continue
		}
		if !acct.IsWritable {
			return fmt.Errorf("%w: %s", program.ErrReadonlyDataModified, acct.Key)
		}
		if s.owner != programID {
			return fmt.Errorf("%w: %s", program.ErrExternalDataModified, acct.Key)
		}
	}
	return nil
}

func (r *Runtime) fail(span oteltrace.Span, ix *Instruction, err error) *Result {
	code := program.Code(err)
	span.RecordError(err)
	span.SetAttributes(attribute.Int64("code", int64(code)))
	r.metrics.failed.WithLabelValues(strconv.FormatUint(uint64(code), 10)).Inc()
	r.log.Info("instruction failed",
		zap.Stringer("program", ix.ProgramID),
		zap.Uint32("code", code),
		zap.Error(err),
	)
	return &Result{
		Code:  code,
		Error: []byte(err.Error()),
	}
}
