// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/pem-codec/src/pem"
)

// blockInfo describes one block of a bundle. Begin and End are byte offsets
// into the whole input.
type blockInfo struct {
	Label string
	Begin int
	End   int
	Size  int
}

// scanBlocks walks every block in data. Text after the last block is
// ignored; a bundle without any block is an error.
func scanBlocks(ctx context.Context, data []byte) ([]blockInfo, error) {
	var (
		blocks []blockInfo
		off    int
	)
	for off < len(data) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rest := data[off:]
		b, err := pem.Scan(rest)
		if errors.Is(err, pem.ErrHeaderNotFound) && len(blocks) > 0 {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", len(blocks)+1, err)
		}

		size, err := pem.DecodedLen(b.Body(rest))
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", len(blocks)+1, b.Label, err)
		}

		blocks = append(blocks, blockInfo{
			Label: string(b.Label),
			Begin: off + b.Begin,
			End:   off + b.End,
			Size:  size,
		})
		off += b.End
	}
	if len(blocks) == 0 {
		return nil, pem.ErrHeaderNotFound
	}
	return blocks, nil
}

func (a *app) newScanCmd() *cobra.Command {
	var (
		inputFile string
		asTable   bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List every PEM block in a bundle",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		return a.readInput(cmd, inputFile, func(data []byte) error {
			blocks, err := scanBlocks(cmd.Context(), data)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(blocks))
			for i, b := range blocks {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					b.Label,
					strconv.Itoa(b.Begin),
					strconv.Itoa(b.End),
					strconv.Itoa(b.Size),
				})
			}

			var out string
			if asTable {
				out, err = renderTable([]string{"#", "Label", "Begin", "End", "Bytes"}, rows)
				if err != nil {
					return err
				}
			} else {
				var sb strings.Builder
				for _, r := range rows {
					sb.WriteString(strings.Join(r, "\t"))
					sb.WriteByte('\n')
				}
				out = sb.String()
			}

			_, err = cmd.OutOrStdout().Write([]byte(out))
			return err
		})
	})

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "input file (default: stdin)")
	cmd.Flags().BoolVar(&asTable, "table", false, "display blocks as markdown table")

	return cmd
}
