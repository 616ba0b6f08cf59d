// Package embedded bundles the compiled cl100k_base/o200k_base vocabulary
// blobs into the binary via the stdlib embed package (spec.md §6,
// "the vocabulary is embedded"). The blobs under data/ are a representative
// placeholder vocabulary (256 base bytes plus a frequency-ordered slice of
// common English sub-words and whole words) rather than the full vendor
// vocabulary: compiling the real ~100k/~200k-entry tables requires
// downloading them from the vendor, which spec.md §1's Non-goals exclude
// at runtime and which this build environment has no network access to do
// at build time either. See DESIGN.md for how a real compiled blob would
// replace these without any code change — Load only cares about the wire
// format, not how the blob was produced.
package embedded

import _ "embed"

//go:embed data/cl100k_base.bpe2
var Cl100kBase []byte

//go:embed data/o200k_base.bpe2
var O200kBase []byte
