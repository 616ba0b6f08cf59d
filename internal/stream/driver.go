// Package stream implements the line-oriented stream driver (spec.md
// §4.8, component C9): reading newline-delimited JSON, dispatching each
// line to internal/record, enforcing quotas, and emitting the run
// summary. It supports a strictly sequential single-worker path and a
// bounded multi-worker path built on a mutex+condvar job queue and
// github.com/sourcegraph/conc for panic-safe goroutine lifecycle
// management.
package stream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/sourcegraph/conc"
	"github.com/tidwall/gjson"

	"github.com/tokencost/tokencost/internal/applog"
	"github.com/tokencost/tokencost/internal/config"
	"github.com/tokencost/tokencost/internal/record"
	"github.com/tokencost/tokencost/internal/xerrors"
)

// Driver runs one pipe invocation end to end.
type Driver struct {
	Cfg    config.Run
	Tok    record.Tokenizer
	Params record.Params
	Log    applog.Logger
}

// Run executes the configured stream over r, writing enriched records to
// w and the summary to the driver's logger. It returns the terminating
// xerrors.Kind and, for anything other than Ok, the error describing why.
func (d *Driver) Run(r io.Reader, w io.Writer) (xerrors.Kind, error) {
	summary := NewSummary(string(d.Params.Accuracy))

	workers := d.Cfg.EffectiveWorkers()
	var kind xerrors.Kind
	var err error
	if workers > 1 {
		kind, err = d.runMultiWorker(r, w, summary, workers)
	} else {
		kind, err = d.runSingleWorker(r, w, summary)
	}

	if serr := d.emitSummary(summary); serr != nil && err == nil {
		err = serr
	}

	return kind, err
}

func (d *Driver) emitSummary(summary *Summary) error {
	snap := summary.Snapshot()
	line, merr := json.Marshal(snap)
	if merr != nil {
		return fmt.Errorf("marshal summary: %w", merr)
	}
	return d.Log.Summary(line)
}

// runSingleWorker is the strictly sequential path: input line order equals
// output record order (spec.md §5).
func (d *Driver) runSingleWorker(r io.Reader, w io.Writer, summary *Summary) (xerrors.Kind, error) {
	maxLine := d.Cfg.MaxLineBytes
	if maxLine <= 0 {
		maxLine = config.DefaultMaxLineBytes
	}

	reader := bufio.NewReaderSize(r, 64*1024)
	writer := bufio.NewWriter(w)
	defer writer.Flush()

	var lineNo int64
	for {
		line, overlong, readErr := readLine(reader, maxLine)
		if len(line) == 0 && readErr == io.EOF {
			break
		}
		lineNo++

		if overlong {
			d.Log.Error().Int64("line", lineNo).Msg("line exceeds max-line-bytes")
			if d.Cfg.FailOnError {
				return xerrors.Generic, xerrors.New(xerrors.Generic, fmt.Errorf("line %d exceeds max line bytes", lineNo))
			}
			summary.RecordFailure()
		} else if len(bytes.TrimSpace(line)) > 0 {
			out, perr := record.Process(line, d.Tok, d.Params)
			if perr != nil {
				d.Log.Error().Int64("line", lineNo).Err(perr).Msg("record error")
				if d.Cfg.FailOnError {
					return xerrors.Generic, xerrors.New(xerrors.Generic, fmt.Errorf("line %d: %w", lineNo, perr))
				}
				summary.RecordFailure()
			} else {
				tokens, cost := extractTotals(out)
				summary.RecordSuccess(tokens, cost)
				writer.Write(out)
				writer.WriteByte('\n')
			}
		}

		// Quota predicates must be evaluated for every line, including the
		// last one, before any EOF short-circuit — a final line without a
		// trailing newline still arrives with readErr == io.EOF here.
		if d.Cfg.HasQuota() {
			snap := summary.Snapshot()
			if (d.Cfg.MaxTokens > 0 && snap.TokensTotal >= d.Cfg.MaxTokens) ||
				(d.Cfg.MaxCost > 0 && snap.CostTotal >= d.Cfg.MaxCost) {
				summary.MarkQuotaHit()
				writer.Flush()
				return xerrors.Quota, xerrors.New(xerrors.Quota, fmt.Errorf("quota reached at line %d", lineNo))
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return xerrors.Generic, xerrors.New(xerrors.Generic, fmt.Errorf("read line %d: %w", lineNo+1, readErr))
		}
	}

	if summary.Snapshot().LinesFailed > 0 {
		return xerrors.Partial, xerrors.New(xerrors.Partial, fmt.Errorf("%d record(s) failed", summary.Snapshot().LinesFailed))
	}
	return xerrors.Ok, nil
}

// runMultiWorker is only selected when no quota is configured (spec.md
// §4.8: quota semantics are strictly sequential).
func (d *Driver) runMultiWorker(r io.Reader, w io.Writer, summary *Summary, workers int) (xerrors.Kind, error) {
	maxLine := d.Cfg.MaxLineBytes
	if maxLine <= 0 {
		maxLine = config.DefaultMaxLineBytes
	}

	q := newLineQueue(workers * 4)
	var writeMu sync.Mutex
	writer := bufio.NewWriter(w)

	var wg conc.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Go(func() {
			for {
				j, ok := q.pop()
				if !ok {
					return
				}
				if len(bytes.TrimSpace(j.bytes)) == 0 {
					continue
				}
				out, perr := record.Process(j.bytes, d.Tok, d.Params)
				if perr != nil {
					d.Log.Error().Int64("line", j.lineNumber).Err(perr).Msg("record error")
					summary.RecordFailure()
					continue
				}
				tokens, cost := extractTotals(out)
				summary.RecordSuccess(tokens, cost)

				writeMu.Lock()
				writer.Write(out)
				writer.WriteByte('\n')
				writeMu.Unlock()
			}
		})
	}

	var producerErr error
	reader := bufio.NewReaderSize(r, 64*1024)
	var lineNo int64
	for {
		line, overlong, readErr := readLine(reader, maxLine)
		if len(line) == 0 && readErr == io.EOF {
			break
		}
		lineNo++

		if overlong {
			d.Log.Error().Int64("line", lineNo).Msg("line exceeds max-line-bytes")
			summary.RecordFailure()
		} else {
			owned := make([]byte, len(line))
			copy(owned, line)
			q.push(job{lineNumber: lineNo, bytes: owned})
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			producerErr = fmt.Errorf("read line %d: %w", lineNo+1, readErr)
			break
		}
	}

	if producerErr != nil {
		q.abort()
	} else {
		q.close()
	}
	wg.Wait()

	writeMu.Lock()
	writer.Flush()
	writeMu.Unlock()

	if producerErr != nil {
		return xerrors.Generic, xerrors.New(xerrors.Generic, producerErr)
	}
	if summary.Snapshot().LinesFailed > 0 {
		return xerrors.Partial, xerrors.New(xerrors.Partial, fmt.Errorf("%d record(s) failed", summary.Snapshot().LinesFailed))
	}
	return xerrors.Ok, nil
}

// readLine reads up to the next '\n' or maxLine bytes, whichever comes
// first. overlong reports the line exceeded maxLine; the caller must
// still drain the rest of the physical line before continuing (spec.md
// §4.8: "skip remaining bytes of the current line").
func readLine(r *bufio.Reader, maxLine int) (line []byte, overlong bool, err error) {
	var buf bytes.Buffer
	for {
		chunk, rErr := r.ReadSlice('\n')
		buf.Write(chunk)
		if buf.Len() > maxLine {
			overlong = true
		}
		if rErr == nil {
			break // found '\n'
		}
		if rErr == bufio.ErrBufferFull {
			continue // no '\n' yet within this internal buffer fill; keep reading
		}
		err = rErr
		break
	}

	out := buf.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	if n := len(out); n > 0 && out[n-1] == '\r' {
		out = out[:n-1]
	}

	if overlong {
		return nil, true, drainOverlong(r, err)
	}
	return out, false, err
}

// drainOverlong consumes the remainder of the current physical line after
// an overlong line is detected, so the next readLine call starts cleanly
// at the next line's first byte.
func drainOverlong(r *bufio.Reader, err error) error {
	if err != nil {
		return err
	}
	for {
		_, rErr := r.ReadSlice('\n')
		if rErr == nil {
			return nil
		}
		if rErr == bufio.ErrBufferFull {
			continue
		}
		return rErr
	}
}

func extractTotals(enriched []byte) (tokens int64, cost float64) {
	tokens = gjson.GetBytes(enriched, "tokens_input").Int()
	cost = gjson.GetBytes(enriched, "cost_total_usd").Float()
	return
}
