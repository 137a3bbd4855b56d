// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/pem-codec/src/pem"
)

func (a *app) newSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Compute exact encoded or decoded sizes",
	}
	cmd.AddCommand(a.newSizeEncodeCmd(), a.newSizeDecodeCmd())
	return cmd
}

func (a *app) newSizeEncodeCmd() *cobra.Command {
	var (
		flags encodingFlags
		n     int
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the length of the PEM text for a payload of -n bytes",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		if n < 0 {
			return ErrNegativeSize
		}
		label, codec, err := flags.resolve(cmd, a.config)
		if err != nil {
			return err
		}
		size, err := codec.EncodedLen(label, n)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), size)
		return err
	})

	flags.register(cmd)
	cmd.Flags().IntVarP(&n, "bytes", "n", 0, "payload length in bytes")

	return cmd
}

func (a *app) newSizeDecodeCmd() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Print the payload length of the first PEM block",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		return a.readInput(cmd, inputFile, func(data []byte) error {
			b, err := pem.Scan(data)
			if err != nil {
				return err
			}
			size, err := pem.DecodedLen(b.Body(data))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), size)
			return err
		})
	})

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "input file (default: stdin)")

	return cmd
}
