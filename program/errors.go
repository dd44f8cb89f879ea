// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import "errors"

var (
	ErrMissingAccount   = errors.New("missing account")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrPermissionDenied = errors.New("permission denied")
	ErrBufferTooSmall   = errors.New("buffer too small")

	// Enforced by the host around program execution.
	ErrMissingSignature       = errors.New("missing required signature")
	ErrExternalDataModified   = errors.New("program modified data of an account it does not own")
	ErrReadonlyDataModified   = errors.New("program modified data of a readonly account")
	ErrAccountDataSizeChanged = errors.New("program changed the size of account data")
	ErrOwnerModified          = errors.New("program modified account owner")
	ErrAccountAlreadyInUse    = errors.New("account already in use")
	ErrInvalidSeeds           = errors.New("provided seeds do not result in a valid address")
	ErrUnknownProgram         = errors.New("unknown program")
)

const (
	CodeSuccess uint32 = iota
	CodeMissingAccount
	CodeInvalidPayload
	CodePermissionDenied
	CodeBufferTooSmall
	CodeMissingSignature
	CodeExternalDataModified
	CodeReadonlyDataModified
	CodeAccountDataSizeChanged
	CodeOwnerModified
	CodeAccountAlreadyInUse
	CodeInvalidSeeds
	CodeUnknownProgram

	CodeUnknown uint32 = 0xffff
)

var codes = []struct {
	err  error
	code uint32
}{
	{ErrMissingAccount, CodeMissingAccount},
	{ErrInvalidPayload, CodeInvalidPayload},
	{ErrPermissionDenied, CodePermissionDenied},
	{ErrBufferTooSmall, CodeBufferTooSmall},
	{ErrMissingSignature, CodeMissingSignature},
	{ErrExternalDataModified, CodeExternalDataModified},
	{ErrReadonlyDataModified, CodeReadonlyDataModified},
	{ErrAccountDataSizeChanged, CodeAccountDataSizeChanged},
	{ErrOwnerModified, CodeOwnerModified},
	{ErrAccountAlreadyInUse, CodeAccountAlreadyInUse},
	{ErrInvalidSeeds, CodeInvalidSeeds},
	{ErrUnknownProgram, CodeUnknownProgram},
}

// Code maps an error returned by a program (or the host around it) to the
// numeric code surfaced to clients.
func Code(err error) uint32 {
	if err == nil {
		return CodeSuccess
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeUnknown
}
