// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/greetingvm/consts"
	"github.com/ava-labs/greetingvm/utils"
)

var (
	handler *Handler

	configFile string
	dbPath     string
	seed       string
	address    string
	counter    uint32

	rootCmd = &cobra.Command{
		Use:        "greeting-cli",
		Short:      "GreetingVM CLI",
		SuggestFor: []string{"greeting-cli", "greetingcli"},
		Version:    consts.Version.String(),
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		keyCmd,
		accountCmd,
		greetCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"path to YAML config (defaults are used if missing)",
	)
	rootCmd.PersistentFlags().StringVar(
		&dbPath,
		"database",
		"",
		"path to database (overrides config, will create it missing)",
	)
	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		h, err := NewHandler(configFile, dbPath)
		if err != nil {
			return err
		}
		handler = h
		utils.Outf("{{yellow}}database:{{/}} %s\n", h.cfg.DatabasePath)
		return nil
	}
	rootCmd.SilenceErrors = true

	// key
	keyCmd.AddCommand(
		genKeyCmd,
		importKeyCmd,
		showKeyCmd,
	)

	// account
	for _, c := range []*cobra.Command{createAccountCmd, showAccountCmd} {
		c.PersistentFlags().StringVar(
			&seed,
			"seed",
			"",
			"seed the greeted account is derived from (defaults to config)",
		)
	}
	showAccountCmd.PersistentFlags().StringVar(
		&address,
		"address",
		"",
		"account address (overrides --seed)",
	)
	accountCmd.AddCommand(
		createAccountCmd,
		showAccountCmd,
	)

	// greet
	greetCmd.PersistentFlags().StringVar(
		&seed,
		"seed",
		"",
		"seed the greeted account is derived from (defaults to config)",
	)
	greetCmd.PersistentFlags().Uint32Var(
		&counter,
		"counter",
		0,
		"amount added to the stored counter (defaults to config)",
	)
}

func Execute() error {
	return rootCmd.Execute()
}

// Close releases the handler opened by the last command, if any. It must be
// called after [Execute] regardless of its result.
func Close() error {
	if handler == nil {
		return nil
	}
	err := handler.Close()
	handler = nil
	return err
}
