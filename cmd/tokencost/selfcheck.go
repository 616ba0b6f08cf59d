package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokencost/tokencost/internal/vocab"
	"github.com/tokencost/tokencost/internal/vocab/embedded"
	"github.com/tokencost/tokencost/internal/xerrors"
)

// newSelfcheckCmd builds the selfcheck subcommand: it loads every embedded
// vocabulary and verifies the invariants component C3 promises (byte
// totality, no duplicate token bytes, declared max length honored), so a
// corrupted or mis-built blob fails fast instead of producing silently
// wrong token counts (SPEC_FULL.md §5).
func newSelfcheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selfcheck",
		Short: "Validate the embedded vocabularies and report ok/fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			encodings := []struct {
				name string
				blob []byte
			}{
				{"cl100k_base", embedded.Cl100kBase},
				{"o200k_base", embedded.O200kBase},
			}

			for _, e := range encodings {
				v, err := vocab.Load(e.blob)
				if err != nil {
					return xerrors.New(xerrors.Generic, fmt.Errorf("%s: load: %w", e.name, err))
				}
				if err := checkVocabulary(v); err != nil {
					return xerrors.New(xerrors.Generic, fmt.Errorf("%s: %w", e.name, err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tokens)\n", e.name, v.Len())
			}
			return nil
		},
	}
}

func checkVocabulary(v *vocab.Vocabulary) error {
	for b := 0; b < 256; b++ {
		id := v.ByteToInitialToken[b]
		if int(id) >= v.Len() {
			return fmt.Errorf("byte 0x%02x maps to out-of-range id %d", b, id)
		}
		got := v.BytesOf(id)
		if len(got) != 1 || got[0] != byte(b) {
			return fmt.Errorf("byte 0x%02x does not round-trip through its initial token", b)
		}
	}

	seen := make(map[string]uint32, v.Len())
	for id, bytes := range v.RevVocab {
		if len(bytes) == 0 {
			continue
		}
		if len(bytes) > v.MaxTokenLen {
			return fmt.Errorf("token %d length %d exceeds declared max %d", id, len(bytes), v.MaxTokenLen)
		}
		key := string(bytes)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("duplicate token bytes for ids %d and %d", prev, id)
		}
		seen[key] = uint32(id)
	}

	return nil
}
