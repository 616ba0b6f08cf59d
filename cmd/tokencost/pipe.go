package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokencost/tokencost/internal/applog"
	"github.com/tokencost/tokencost/internal/config"
	"github.com/tokencost/tokencost/internal/modelreg"
	"github.com/tokencost/tokencost/internal/record"
	"github.com/tokencost/tokencost/internal/stream"
	"github.com/tokencost/tokencost/internal/xerrors"
)

func newPipeCmd(registry *modelreg.Registry) *cobra.Command {
	var (
		mode         string
		model        string
		field        string
		workers      int
		maxTokens    int64
		maxCost      float64
		failOnError  bool
		quiet        bool
		maxLineBytes int
	)

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Read newline-delimited JSON from stdin, enrich it, write to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			// quietOutput must be set before any early return below, so
			// main() can honor --quiet even for a usage/resolve failure.
			quietOutput = quiet

			var recMode record.Mode
			switch mode {
			case "count", "":
				recMode = record.ModeCount
			case "price":
				recMode = record.ModePrice
			default:
				return xerrors.New(xerrors.Usage, errUsagef("unknown --mode %q (want count or price)", mode))
			}

			if workers > 1 && (maxTokens > 0 || maxCost > 0) {
				return xerrors.New(xerrors.Usage, errUsagef("--workers > 1 is incompatible with --max-tokens/--max-cost"))
			}

			tok, accuracy, rates, err := resolveModel(registry, model)
			if err != nil {
				return xerrors.New(xerrors.Generic, err)
			}

			cfg := config.Run{
				Model:        model,
				TextField:    field,
				Mode:         recMode,
				Workers:      workers,
				MaxTokens:    maxTokens,
				MaxCost:      maxCost,
				MaxLineBytes: maxLineBytes,
				FailOnError:  failOnError,
				Quiet:        quiet,
			}

			driver := &stream.Driver{
				Cfg: cfg,
				Tok: tok,
				Params: record.Params{
					TextField: field,
					Mode:      recMode,
					Accuracy:  accuracy,
					Rates:     rates,
				},
				Log: applog.New(cfg.Quiet),
			}

			kind, runErr := driver.Run(os.Stdin, os.Stdout)
			if kind != xerrors.Ok {
				if runErr != nil {
					return runErr
				}
				return xerrors.New(kind, errUsagef("stream ended with kind %s", kind))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "count", "count or price")
	cmd.Flags().StringVar(&model, "model", "", "canonical or alias model name")
	cmd.Flags().StringVar(&field, "field", "text", "JSON field carrying the text to tokenize")
	cmd.Flags().IntVar(&workers, "workers", 1, "worker count (must be 1 when a quota is set)")
	cmd.Flags().Int64Var(&maxTokens, "max-tokens", 0, "cumulative input-token quota (0 = none)")
	cmd.Flags().Float64Var(&maxCost, "max-cost", 0, "cumulative dollar-cost quota (0 = none)")
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "promote record errors to stream-fatal")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress human-readable error text")
	cmd.Flags().IntVar(&maxLineBytes, "max-line-bytes", config.DefaultMaxLineBytes, "maximum accepted input line size")

	return cmd
}

func errUsagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }
