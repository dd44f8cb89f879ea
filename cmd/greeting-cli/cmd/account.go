// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/greetingvm/codec"
	"github.com/ava-labs/greetingvm/runtime"
	"github.com/ava-labs/greetingvm/state"
	"github.com/ava-labs/greetingvm/storage"
	"github.com/ava-labs/greetingvm/utils"
)

var accountCmd = &cobra.Command{
	Use: "account",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var createAccountCmd = &cobra.Command{
	Use: "create",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		c, err := handler.Client()
		if err != nil {
			return err
		}
		s := handler.Seed(seed)
		target, result, err := c.CreateGreetedAccount(ctx, s, handler.cfg.AccountSpace)
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}seed:{{/}} %q {{yellow}}account:{{/}} %s\n", s, target)
		return printResult(result)
	},
}

var showAccountCmd = &cobra.Command{
	Use: "show",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		target, err := resolveTarget()
		if err != nil {
			return err
		}
		acct, err := storage.GetAccount(ctx, state.NewSimpleMutable(handler.db), target)
		if errors.Is(err, storage.ErrAccountNotFound) {
			utils.Outf("{{red}}account %s does not exist{{/}}\n", target)
			return nil
		}
		if err != nil {
			return err
		}
		utils.Outf(
			"{{yellow}}account:{{/}} %s {{yellow}}owner:{{/}} %s {{yellow}}space:{{/}} %d\n",
			acct.Key,
			acct.Owner,
			len(acct.Data),
		)
		counter, err := storage.GetCounter(ctx, state.NewSimpleMutable(handler.db), target)
		if err != nil {
			utils.Outf("{{red}}not a greeting account:{{/}} %v\n", err)
			return nil
		}
		utils.Outf("{{cyan}}greeted:{{/}} %d times\n", counter)
		return nil
	},
}

// resolveTarget returns the --address flag or the account derived from the
// default key and seed.
func resolveTarget() (codec.Address, error) {
	if address != "" {
		return codec.ParseAddress(address)
	}
	c, err := handler.Client()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return c.GreetedAddress(handler.Seed(seed))
}

func printResult(result *runtime.Result) error {
	if !result.Success {
		utils.Outf(
			"{{red}}instruction failed (code=%d):{{/}} %s\n",
			result.Code,
			result.Error,
		)
		return fmt.Errorf("%w: code=%d", ErrInstructionFailed, result.Code)
	}
	utils.Outf("{{green}}success{{/}}\n")
	return nil
}
