package stream

import "sync"

// Totals is the serializable run summary emitted once to the error stream
// after the stream ends (spec.md §6).
type Totals struct {
	Version     string  `json:"version"`
	LinesTotal  int64   `json:"lines_total"`
	LinesFailed int64   `json:"lines_failed"`
	TokensTotal int64   `json:"tokens_total"`
	CostTotal   float64 `json:"cost_total"`
	Accuracy    string  `json:"accuracy"`
	QuotaHit    bool    `json:"quota_hit"`
}

// Summary guards a Totals behind the "summary lock" of spec.md §5, held
// briefly per whole-record update.
type Summary struct {
	mu sync.Mutex
	t  Totals
}

// NewSummary returns a zeroed Summary tagged with the active tokenizer's
// accuracy tier.
func NewSummary(accuracy string) *Summary {
	return &Summary{t: Totals{Version: "1", Accuracy: accuracy}}
}

// RecordSuccess folds one successfully enriched record's contribution into
// the summary under the summary lock.
func (s *Summary) RecordSuccess(tokens int64, cost float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.LinesTotal++
	s.t.TokensTotal += tokens
	s.t.CostTotal += cost
}

// RecordFailure counts one skipped record.
func (s *Summary) RecordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.LinesTotal++
	s.t.LinesFailed++
}

// MarkQuotaHit flips quota_hit under the summary lock.
func (s *Summary) MarkQuotaHit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.QuotaHit = true
}

// Snapshot copies out the summary's current totals for serialization
// without holding the lock across json.Marshal.
func (s *Summary) Snapshot() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t
}
