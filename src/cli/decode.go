// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/pem-codec/src/pem"
)

func (a *app) newDecodeCmd() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		labelOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Extract the payload of the first PEM block",
		Long: `Decode locates the first PEM block in the input, validates it strictly
and writes its binary payload. Text before the block is ignored.`,
		Args: cobra.NoArgs,
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		return a.readInput(cmd, inputFile, func(data []byte) error {
			block, _, err := pem.DecodeToMemory(data)
			if err != nil {
				return err
			}
			if labelOnly {
				return writeOutput(cmd, outputFile, []byte(block.Label+"\n"))
			}
			if err := writeOutput(cmd, outputFile, block.Bytes); err != nil {
				return err
			}
			a.log.Printf("Decoded %s block (%d bytes)", block.Label, len(block.Bytes))
			return nil
		})
	})

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "input file (default: stdin)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	cmd.Flags().BoolVar(&labelOnly, "label-only", false, "print the block label instead of the payload")

	return cmd
}
