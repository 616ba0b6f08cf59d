package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokencost/tokencost/internal/modelreg"
	"github.com/tokencost/tokencost/internal/xerrors"
)

// newDecodeCmd builds the decode subcommand: it reads a line of
// whitespace-separated token ids from stdin and writes the reconstructed
// bytes to stdout, the inverse of pipe's encode step (SPEC_FULL.md §5).
func newDecodeCmd(registry *modelreg.Registry) *cobra.Command {
	var model string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a line of token ids back into text",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, entry, ok := registry.Resolve(model)
			if !ok {
				return xerrors.New(xerrors.Usage, fmt.Errorf("unknown model %q (decode requires a concrete encoding)", model))
			}

			tok, err := loadTokenizer(entry.Encoding)
			if err != nil {
				return xerrors.New(xerrors.Generic, err)
			}

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
			writer := bufio.NewWriter(os.Stdout)
			defer writer.Flush()

			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					writer.WriteByte('\n')
					continue
				}
				ids, perr := parseTokenIDs(line)
				if perr != nil {
					return xerrors.New(xerrors.Usage, perr)
				}

				decoded := tok.Decode(ids)
				if asJSON {
					b, merr := json.Marshal(string(decoded))
					if merr != nil {
						return xerrors.New(xerrors.Generic, merr)
					}
					writer.Write(b)
				} else {
					writer.Write(decoded)
				}
				writer.WriteByte('\n')
			}
			if err := scanner.Err(); err != nil {
				return xerrors.New(xerrors.Generic, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "canonical or alias model name naming the encoding to decode with")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit each decoded line as a JSON string")
	cmd.MarkFlagRequired("model")

	return cmd
}

func parseTokenIDs(line string) ([]uint32, error) {
	fields := strings.Fields(line)
	ids := make([]uint32, 0, len(fields))
	for _, f := range fields {
		var v uint32
		if _, err := fmt.Sscanf(f, "%d", &v); err != nil {
			return nil, fmt.Errorf("invalid token id %q: %w", f, err)
		}
		ids = append(ids, v)
	}
	return ids, nil
}
