// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/greetingvm/crypto/ed25519"
	"github.com/ava-labs/greetingvm/program"
	"github.com/ava-labs/greetingvm/runtime"
)

func TestHandlerKeys(t *testing.T) {
	require := require.New(t)
	h, err := NewHandler("", t.TempDir())
	require.NoError(err)
	defer func() {
		require.NoError(h.Close())
	}()

	_, err = h.GetDefaultKey()
	require.ErrorIs(err, ErrNoKeys)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	require.NoError(h.StoreKey(priv))
	require.ErrorIs(h.StoreKey(priv), ErrDuplicate)
	require.NoError(h.StoreDefaultKey(priv.PublicKey()))

	stored, err := h.GetDefaultKey()
	require.NoError(err)
	require.Equal(priv, stored)
}

func TestHandlerPersistsGreetings(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	h, err := NewHandler("", dir)
	require.NoError(err)
	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	require.NoError(h.StoreKey(priv))
	require.NoError(h.StoreDefaultKey(priv.PublicKey()))

	c, err := h.Client()
	require.NoError(err)
	target, result, err := c.CreateGreetedAccount(ctx, h.Seed(""), h.cfg.AccountSpace)
	require.NoError(err)
	require.True(result.Success)
	result, err = c.Greet(ctx, target, h.cfg.Counter)
	require.NoError(err)
	require.True(result.Success)
	require.NoError(h.Close())

	// Reopen and keep counting from the persisted value.
	h, err = NewHandler("", dir)
	require.NoError(err)
	defer func() {
		require.NoError(h.Close())
	}()
	c, err = h.Client()
	require.NoError(err)
	result, err = c.Greet(ctx, target, 1)
	require.NoError(err)
	require.True(result.Success)

	greeted, err := c.Counter(ctx, target)
	require.NoError(err)
	require.Equal(h.cfg.Counter+1, greeted)
}

func TestCloseReleasesHandler(t *testing.T) {
	require := require.New(t)
	h, err := NewHandler("", t.TempDir())
	require.NoError(err)

	handler = h
	require.NoError(Close())
	require.Nil(handler)
	_, err = h.db.Get([]byte{0})
	require.ErrorIs(err, database.ErrClosed)

	// Nothing left to release.
	require.NoError(Close())
}

func TestPrintResultFailure(t *testing.T) {
	require := require.New(t)
	require.NoError(printResult(&runtime.Result{Success: true}))

	err := printResult(&runtime.Result{
		Code:  program.CodePermissionDenied,
		Error: []byte(program.ErrPermissionDenied.Error()),
	})
	require.ErrorIs(err, ErrInstructionFailed)
	require.ErrorContains(err, "code=")
}

func TestFailedGreetIsReported(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	h, err := NewHandler("", t.TempDir())
	require.NoError(err)
	defer func() {
		require.NoError(h.Close())
	}()
	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	require.NoError(h.StoreKey(priv))
	require.NoError(h.StoreDefaultKey(priv.PublicKey()))

	c, err := h.Client()
	require.NoError(err)
	target, err := c.GreetedAddress(h.Seed(""))
	require.NoError(err)

	// The account was never created, so the greeter does not own it.
	result, err := c.Greet(ctx, target, 1)
	require.NoError(err)
	require.False(result.Success)
	require.ErrorIs(printResult(result), ErrInstructionFailed)
}
