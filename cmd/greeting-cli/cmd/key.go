// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/greetingvm/auth"
	"github.com/ava-labs/greetingvm/crypto/ed25519"
	"github.com/ava-labs/greetingvm/utils"
)

var keyCmd = &cobra.Command{
	Use: "key",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var genKeyCmd = &cobra.Command{
	Use: "generate",
	RunE: func(*cobra.Command, []string) error {
		priv, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		return storeAndSetDefault(priv, "created")
	},
}

var importKeyCmd = &cobra.Command{
	Use: "import [hex private key]",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrArgumentCount
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		priv, err := ed25519.HexToKey(args[0])
		if err != nil {
			return err
		}
		return storeAndSetDefault(priv, "imported")
	},
}

var showKeyCmd = &cobra.Command{
	Use: "show",
	RunE: func(*cobra.Command, []string) error {
		_, err := handler.GetDefaultKey()
		return err
	},
}

func storeAndSetDefault(priv ed25519.PrivateKey, verb string) error {
	if err := handler.StoreKey(priv); err != nil {
		return err
	}
	publicKey := priv.PublicKey()
	if err := handler.StoreDefaultKey(publicKey); err != nil {
		return err
	}
	utils.Outf(
		"{{green}}%s address:{{/}} %s\n",
		verb,
		auth.NewED25519Address(publicKey),
	)
	return nil
}
