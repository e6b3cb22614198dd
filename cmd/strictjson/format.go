package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radikant-go/strictjson/decode"
	"github.com/radikant-go/strictjson/encode"
)

func newFormatCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "format [file|-]",
		Short: "Decode JSON and re-encode it in strictjson's compact canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := flags.logger()
			if err != nil {
				return err
			}

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

			out, err := encode.Encode(v)
			if err != nil {
				logger.Error("encoding value", "error", err)
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
