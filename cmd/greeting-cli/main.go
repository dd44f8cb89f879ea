// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "greeting-cli" creates greeted accounts and sends greetings to them
// against a local greetingvm runtime.
package main

import (
	"errors"
	"os"

	"github.com/ava-labs/greetingvm/cmd/greeting-cli/cmd"
	"github.com/ava-labs/greetingvm/utils"
)

func main() {
	err := errors.Join(cmd.Execute(), cmd.Close())
	if err != nil {
		utils.Outf("{{red}}greeting-cli exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
