// Package modelreg maps model names to tokenizer encodings and accuracy
// tiers (spec.md §4.5, component C6). Unknown models fall back to a
// heuristic byte-length estimate rather than failing.
package modelreg

import (
	"strings"
	"sync"
)

// Accuracy is the fidelity tier of a token count relative to the vendor's
// own tokenizer.
type Accuracy string

const (
	Exact     Accuracy = "exact"
	Heuristic Accuracy = "heuristic"
	Estimate  Accuracy = "estimate"
)

// Entry describes a canonical model's tokenizer binding.
type Entry struct {
	Encoding string
	Accuracy Accuracy
}

// Registry is a read-mostly canonical-model table plus an alias table.
// Guarded by an RWMutex the way the pack's pricing tables are, so callers
// may register additional aliases at startup without racing lookups.
type Registry struct {
	mu      sync.RWMutex
	models  map[string]Entry
	aliases map[string]string
}

// Default returns the built-in registry covering the cl100k_base and
// o200k_base model families.
func Default() *Registry {
	r := &Registry{
		models:  make(map[string]Entry),
		aliases: make(map[string]string),
	}

	register := func(canonical, encoding string, aliases ...string) {
		r.models[canonical] = Entry{Encoding: encoding, Accuracy: Exact}
		for _, a := range aliases {
			r.aliases[strings.ToLower(a)] = canonical
		}
	}

	register("openai/gpt-4o", "o200k_base", "gpt-4o", "gpt-4o-2024-08-06")
	register("openai/gpt-4o-mini", "o200k_base", "gpt-4o-mini")
	register("openai/o1", "o200k_base", "o1", "o1-preview")
	register("openai/o1-mini", "o200k_base", "o1-mini")
	register("openai/gpt-4-turbo", "cl100k_base", "gpt-4-turbo")
	register("openai/gpt-4", "cl100k_base", "gpt-4")
	register("openai/gpt-3.5-turbo", "cl100k_base", "gpt-3.5-turbo", "gpt-35-turbo")
	register("openai/text-embedding-3-small", "cl100k_base", "text-embedding-3-small")
	register("openai/text-embedding-3-large", "cl100k_base", "text-embedding-3-large")
	register("azure/gpt-4o", "o200k_base", "azure-gpt-4o")
	register("azure/gpt-4o-mini", "o200k_base", "azure-gpt-4o-mini")
	register("azure/gpt-4-turbo", "cl100k_base", "azure-gpt-4-turbo")

	return r
}

// Register adds or overwrites a canonical model's encoding binding and its
// aliases.
func (r *Registry) Register(canonical, encoding string, aliases ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[canonical] = Entry{Encoding: encoding, Accuracy: Exact}
	for _, a := range aliases {
		r.aliases[strings.ToLower(a)] = canonical
	}
}

// Resolve looks up a model name (canonical or alias, case-insensitive for
// aliases) and reports whether it has a known exact-tier binding.
func (r *Registry) Resolve(name string) (canonical string, entry Entry, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.models[name]; ok {
		return name, e, true
	}
	if canon, ok := r.aliases[strings.ToLower(name)]; ok {
		if e, ok := r.models[canon]; ok {
			return canon, e, true
		}
	}
	return "", Entry{}, false
}

// EstimateTokens implements the heuristic fallback for models with no
// known encoding: ceil(byte_length / 4), tagged Estimate (spec.md §4.5).
func EstimateTokens(textByteLen int) int {
	if textByteLen <= 0 {
		return 0
	}
	return (textByteLen + 3) / 4
}
