// Package vocab parses the embedded binary vocabulary blob described in
// spec.md §6 into an immutable, concurrency-safe lookup structure. The
// loader performs no I/O — it is a pure parser over a byte slice, matching
// spec.md §4.4.
package vocab

import (
	"encoding/binary"
	"fmt"
)

const (
	headerSize  = 64
	magicString = "BPE2"
	version2    = 2
)

// entry is one (offset, length) pair from the token table.
type entry struct {
	offset uint32
	length uint32
}

// Vocabulary is the immutable, bijective token-id <-> token-bytes mapping.
type Vocabulary struct {
	// RevVocab[id] is the raw bytes for token id. A nil/zero-length slot is
	// a reserved-but-empty id (spec.md §6: "length == 0 marks a reserved id").
	RevVocab [][]byte

	rankOf map[string]uint32

	// ByteToInitialToken[b] is the token id representing the single raw byte
	// b. Required to be total for cl100k_base/o200k_base (spec.md §3).
	ByteToInitialToken [256]uint32

	MaxTokenLen int
	SourceHash  [32]byte
}

// Load parses blob (header + offset/length table + trailing byte blob) into
// a Vocabulary. It rejects magic mismatches, unknown versions, truncation,
// and any data-integrity failure named in spec.md §4.4.
func Load(blob []byte) (*Vocabulary, error) {
	if len(blob) < headerSize {
		return nil, fmt.Errorf("vocab: truncated header: have %d bytes, need %d", len(blob), headerSize)
	}

	if string(blob[0:4]) != magicString {
		return nil, fmt.Errorf("vocab: bad magic %q, want %q", blob[0:4], magicString)
	}

	ver := binary.LittleEndian.Uint32(blob[4:8])
	if ver != version2 {
		return nil, fmt.Errorf("vocab: unsupported version %d, want %d", ver, version2)
	}

	count := binary.LittleEndian.Uint32(blob[8:12])
	maxTokenLen := binary.LittleEndian.Uint32(blob[12:16])
	blobLen := binary.LittleEndian.Uint32(blob[16:20])

	var sourceHash [32]byte
	copy(sourceHash[:], blob[20:52])

	tableStart := headerSize
	tableBytes := int(count) * 8
	tableEnd := tableStart + tableBytes
	if len(blob) < tableEnd {
		return nil, fmt.Errorf("vocab: truncated token table: have %d bytes, need %d", len(blob), tableEnd)
	}

	dataStart := tableEnd
	dataEnd := dataStart + int(blobLen)
	if len(blob) < dataEnd {
		return nil, fmt.Errorf("vocab: truncated data blob: have %d bytes, need %d", len(blob), dataEnd)
	}
	data := blob[dataStart:dataEnd]

	entries := make([]entry, count)
	for i := uint32(0); i < count; i++ {
		off := tableStart + int(i)*8
		e := entry{
			offset: binary.LittleEndian.Uint32(blob[off : off+4]),
			length: binary.LittleEndian.Uint32(blob[off+4 : off+8]),
		}
		entries[i] = e
	}

	revVocab := make([][]byte, count)
	rankOf := make(map[string]uint32, count)

	for id, e := range entries {
		if e.length == 0 {
			continue // reserved-but-empty id
		}
		if uint64(e.offset)+uint64(e.length) > uint64(len(data)) {
			return nil, fmt.Errorf("vocab: token %d out of bounds: offset=%d length=%d blob=%d", id, e.offset, e.length, len(data))
		}
		if e.length > maxTokenLen {
			return nil, fmt.Errorf("vocab: token %d length %d exceeds declared max %d", id, e.length, maxTokenLen)
		}

		tokBytes := make([]byte, e.length)
		copy(tokBytes, data[e.offset:e.offset+e.length])
		revVocab[id] = tokBytes

		key := string(tokBytes)
		if prev, exists := rankOf[key]; exists {
			return nil, fmt.Errorf("vocab: duplicate token bytes for ids %d and %d", prev, id)
		}
		rankOf[key] = uint32(id)
	}

	v := &Vocabulary{
		RevVocab:    revVocab,
		rankOf:      rankOf,
		MaxTokenLen: int(maxTokenLen),
		SourceHash:  sourceHash,
	}

	for b := 0; b < 256; b++ {
		id, ok := v.rankOf[string([]byte{byte(b)})]
		if !ok {
			return nil, fmt.Errorf("vocab: missing single-byte token for byte 0x%02x", b)
		}
		v.ByteToInitialToken[b] = id
	}

	return v, nil
}

// RankOf returns the token id for an exact byte sequence, if present.
func (v *Vocabulary) RankOf(tokenBytes []byte) (uint32, bool) {
	id, ok := v.rankOf[string(tokenBytes)]
	return id, ok
}

// BytesOf returns the byte sequence for a token id. Panics on an
// out-of-range id, matching the teacher's decoder
// (adiu19-bpetok-go/internal/tokenizer/core/decoder.go) which treats an
// out-of-range id as a programmer error, not a recoverable one.
func (v *Vocabulary) BytesOf(id uint32) []byte {
	if int(id) < 0 || int(id) >= len(v.RevVocab) {
		panic(fmt.Sprintf("vocab: token id %d out of range [0,%d)", id, len(v.RevVocab)))
	}
	return v.RevVocab[id]
}

// Len returns the number of ids the vocabulary table reserves (including
// empty/reserved slots).
func (v *Vocabulary) Len() int { return len(v.RevVocab) }
