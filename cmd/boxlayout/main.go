package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/internal/cli"
	boxerrors "github.com/matzehuels/boxlayout/pkg/errors"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitBadInput    = 2
	exitInterrupted = 130
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRoot(os.Stderr).ExecuteContext(ctx)
	cancel()

	code := exitCode(err)
	if code != exitOK && code != exitInterrupted {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}

// exitCode maps a command error to the process exit status. Invalid trees,
// viewports, formats and flags exit with 2.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case boxerrors.GetCode(err).IsValidation():
		return exitBadInput
	default:
		return exitFailure
	}
}

// newRoot builds the command tree with the global --verbose flag, which takes
// effect before the config file is read.
func newRoot(logOut io.Writer) *cobra.Command {
	var verbose bool

	c := cli.New(logOut, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if loadConfig != nil {
			return loadConfig(cmd, args)
		}
		return nil
	}
	return root
}
