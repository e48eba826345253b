// SPDX-License-Identifier: Unlicense OR MIT

// Command latticeview lays out scene files and prints or renders the
// result.
//
//	latticeview layout dialog.toml --width 400
//	latticeview render -o dialog.png --scale 2 dialog.toml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/latticeui/lattice/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
