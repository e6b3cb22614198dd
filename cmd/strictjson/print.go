package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/radikant-go/strictjson/decode"
	"github.com/radikant-go/strictjson/jsonprint"
)

func newPrintCmd() *cobra.Command {
	var indent string

	cmd := &cobra.Command{
		Use:   "print [file|-]",
		Short: "Pretty-print JSON for human inspection (not a wire encoder)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				logger.Error("reading input", "error", err)
				return err
			}

			v, err := decode.Decode(input)
			if err != nil {
				logger.Error("decoding input", "error", err)
				return err
			}
			defer v.Release()

			fmt.Fprintln(cmd.OutOrStdout(), jsonprint.Sprint(v, indent))
			return nil
		},
	}
	cmd.Flags().StringVar(&indent, "indent", "  ", "indentation string per nesting level")
	return cmd
}
