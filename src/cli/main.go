package main

import (
	"errors"
	"os"

	"github.com/sofmeright/gauntlet/src/cli/cmd"
	"github.com/sofmeright/gauntlet/src/verify"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *verify.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
