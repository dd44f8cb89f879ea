// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/greetingvm/utils"
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "add a counter to the greeted account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		c, err := handler.Client()
		if err != nil {
			return err
		}
		target, err := c.GreetedAddress(handler.Seed(seed))
		if err != nil {
			return err
		}
		amount := handler.cfg.Counter
		if cmd.Flags().Changed("counter") {
			amount = counter
		}
		result, err := c.Greet(ctx, target, amount)
		if err != nil {
			return err
		}
		if err := printResult(result); err != nil {
			return err
		}
		greeted, err := c.Counter(ctx, target)
		if err != nil {
			return err
		}
		utils.Outf("{{cyan}}account:{{/}} %s {{cyan}}greeted:{{/}} %d times\n", target, greeted)
		return nil
	},
}
