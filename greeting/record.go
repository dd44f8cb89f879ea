// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package greeting defines the record stored by greeter accounts and carried
// in greet instructions.
package greeting

import (
	"fmt"

	"github.com/near/borsh-go"

	"github.com/ava-labs/greetingvm/consts"
)

// RecordLen is the exact size of an encoded [Record]: a little-endian
// uint32 with no prefix, tag or padding.
const RecordLen = consts.Uint32Len

type Record struct {
	Counter uint32
}

// Unmarshal decodes exactly [RecordLen] bytes into a [Record].
func Unmarshal(b []byte) (*Record, error) {
	switch {
	case len(b) < RecordLen:
		return nil, fmt.Errorf("%w: %d < %d", ErrInsufficientLength, len(b), RecordLen)
	case len(b) > RecordLen:
		return nil, fmt.Errorf("%w: %d > %d", ErrTrailingBytes, len(b), RecordLen)
	}
	var r Record
	if err := borsh.Deserialize(&r, b); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Record) Marshal() ([]byte, error) {
	return borsh.Serialize(*r)
}

// MarshalInto overwrites the first [RecordLen] bytes of dst. dst is left
// untouched if it is too small to hold the record.
func (r *Record) MarshalInto(dst []byte) error {
	if len(dst) < RecordLen {
		return fmt.Errorf("%w: %d < %d", ErrBufferTooSmall, len(dst), RecordLen)
	}
	b, err := r.Marshal()
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// Add increments the counter by delta, wrapping at 2^32.
func (r *Record) Add(delta uint32) {
	r.Counter += delta
}
