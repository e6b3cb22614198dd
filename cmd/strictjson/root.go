package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/radikant-go/strictjson/internal/clilog"
	"github.com/radikant-go/strictjson/jsonerr"
)

// maxInputSize bounds how much of stdin or a file argument is read before
// handing bytes to decode.Decode — decode itself has no input-length limit,
// but a CLI reading into memory needs one.
const maxInputSize = 64 * 1024 * 1024

type globalFlags struct {
	logLevel  string
	logFormat string
}

func (g *globalFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&g.logFormat, "log-format", "text", "log format: text, json")
}

func (g *globalFlags) logger() (*slog.Logger, error) {
	h, err := clilog.NewHandler(os.Stderr, g.logLevel, g.logFormat)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "strictjson",
		Short:         "A strict RFC 8259 JSON codec CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.register(root.PersistentFlags())

	root.AddCommand(
		newFormatCmd(flags),
		newVerifyCmd(flags),
		newPrintCmd(),
	)
	return root
}

// readInput reads a single positional file argument (or stdin if args is
// empty or "-"), bounded by maxInputSize.
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return readBounded(stdin)
	}
	if len(args) > 1 {
		return nil, fmt.Errorf("expected at most one input file, got %d", len(args))
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", args[0], err)
	}
	defer f.Close()
	return readBounded(f)
}

func readBounded(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, maxInputSize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(data) > maxInputSize {
		return nil, fmt.Errorf("input exceeds maximum size %d bytes", maxInputSize)
	}
	return data, nil
}

// exitCodeFor maps a jsonerr.Error's FailureClass to a process exit code:
// input-validation failures exit 2, internal failures exit 10, and any
// other error (e.g. a cobra usage error or an os.Open failure the command
// layer didn't classify) exits 1.
func exitCodeFor(err error) int {
	var je *jsonerr.Error
	if errors.As(err, &je) {
		if je.Class == jsonerr.Internal {
			return 10
		}
		return 2
	}
	return 1
}
