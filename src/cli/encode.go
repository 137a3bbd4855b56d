// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) newEncodeCmd() *cobra.Command {
	var (
		flags      encodingFlags
		inputFile  string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Wrap binary input in a PEM block",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		label, codec, err := flags.resolve(cmd, a.config)
		if err != nil {
			return err
		}

		return a.readInput(cmd, inputFile, func(data []byte) error {
			out, err := codec.EncodeToMemory(label, data)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, outputFile, out); err != nil {
				return err
			}
			a.log.Printf("Encoded %d bytes as %s (%d bytes of text)", len(data), label, len(out))
			return nil
		})
	})

	flags.register(cmd)
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "input file (default: stdin)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")

	return cmd
}
