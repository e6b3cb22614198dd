package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radikant-go/strictjson/decode"
	"github.com/radikant-go/strictjson/encode"
	"github.com/radikant-go/strictjson/jsonerr"
)

func newVerifyCmd(flags *globalFlags) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "verify [file|-]",
		Short: "Check that input is already in strictjson's compact canonical form",
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

			canonical, err := encode.Encode(v)
			if err != nil {
				logger.Error("encoding value", "error", err)
				return err
			}

			if !bytes.Equal(input, canonical) {
				return jsonerr.New(jsonerr.Semantic, -1, "input is not in canonical form")
			}

			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the \"ok\" message on success")
	return cmd
}
