// Command logoexport prepares the platform logo export tree and its
// instruction document. See "logoexport --help".
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/driftpro/logoexport/internal/cli"
	apperr "github.com/driftpro/logoexport/pkg/errors"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130 // 128 + SIGINT, as shells report it
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCommand().ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		fmt.Fprintln(os.Stderr, "Error:", apperr.UserMessage(err))
		return exitError
	}
}

// rootCommand adds --verbose to the CLI root. The flag is applied before the
// root's own pre-run attaches the logger to the command context.
func rootCommand() *cobra.Command {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	attach := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		// maxprocs.Set only fails on an invalid GOMAXPROCS env value; the
		// runtime default applies then.
		_, _ = maxprocs.Set(maxprocs.Logger(c.Logger.Debugf))
		return attach(cmd, args)
	}
	return root
}
