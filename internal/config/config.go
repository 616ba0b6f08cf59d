// Package config defines the typed run configuration assembled by
// cmd/tokencost from cobra flags (SPEC_FULL.md §3). internal/ packages
// never read flags or environment variables directly — spec.md's "the
// core requires no environment variables" boundary sits between cmd/ and
// internal/.
package config

import "github.com/tokencost/tokencost/internal/record"

// Run configures one invocation of the pipe stream driver.
type Run struct {
	// Model is the requested canonical or alias model name.
	Model string
	// TextField is the JSON field read for tokenizable text.
	TextField string
	// Mode selects count-only or count-and-price enrichment.
	Mode record.Mode
	// Workers is the worker count; 1 means the single-worker sequential
	// path. >1 requires MaxTokens and MaxCost to be unset (spec.md §4.8).
	Workers int
	// MaxTokens is the cumulative input-token quota, or 0 for none.
	MaxTokens int64
	// MaxCost is the cumulative dollar-cost quota, or 0 for none.
	MaxCost float64
	// MaxLineBytes bounds a single input line; spec.md default 10 MiB.
	MaxLineBytes int
	// FailOnError promotes record-level errors to stream-fatal in
	// single-worker mode.
	FailOnError bool
	// Quiet suppresses human-readable error text (not the summary).
	Quiet bool
}

// DefaultMaxLineBytes is spec.md §4.8's default overlong-line threshold.
const DefaultMaxLineBytes = 10 * 1024 * 1024

// HasQuota reports whether either quota predicate is configured.
func (r Run) HasQuota() bool {
	return r.MaxTokens > 0 || r.MaxCost > 0
}

// EffectiveWorkers returns the worker count actually usable given the
// quota configuration: multi-worker mode is only valid when no quota is
// set, since quota evaluation is defined to be strictly sequential
// (spec.md §4.8).
func (r Run) EffectiveWorkers() int {
	if r.HasQuota() {
		return 1
	}
	if r.Workers < 1 {
		return 1
	}
	return r.Workers
}
