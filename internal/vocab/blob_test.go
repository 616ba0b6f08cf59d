package vocab_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tokencost/tokencost/internal/vocab"
	"github.com/tokencost/tokencost/testutil"
)

func TestLoadRejectsBadMagic(t *testing.T) {
	blob := testutil.EncodeVocabBlob(testutil.AsciiBaseVocab())
	blob[0] = 'X'
	_, err := vocab.Load(blob)
	require.Error(t, err)
}

func TestLoadRejectsTruncation(t *testing.T) {
	blob := testutil.EncodeVocabBlob(testutil.AsciiBaseVocab())
	_, err := vocab.Load(blob[:32])
	require.Error(t, err)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	blob := testutil.EncodeVocabBlob(testutil.AsciiBaseVocab())
	blob[4] = 99
	_, err := vocab.Load(blob)
	require.Error(t, err)
}

func TestLoadBuildsTotalByteToInitialToken(t *testing.T) {
	v := testutil.BuildVocab(testutil.AsciiBaseVocab())
	for b := 0; b < 256; b++ {
		id := v.ByteToInitialToken[b]
		require.Equal(t, []byte{byte(b)}, v.BytesOf(id))
	}
}

func TestLoadRejectsMissingByte(t *testing.T) {
	tokens := testutil.AsciiBaseVocab()
	tokens = tokens[:255] // drop byte 0xFF
	blob := testutil.EncodeVocabBlob(tokens)
	_, err := vocab.Load(blob)
	require.Error(t, err)
}

func TestLoadRejectsDuplicateBytes(t *testing.T) {
	tokens := testutil.AsciiBaseVocab()
	tokens = append(tokens, []byte{0x00}) // duplicate of byte 0
	blob := testutil.EncodeVocabBlob(tokens)
	_, err := vocab.Load(blob)
	require.Error(t, err)
}

func TestLoadHonoursReservedIds(t *testing.T) {
	tokens := testutil.AsciiBaseVocab()
	tokens = append(tokens, []byte{}) // reserved, empty
	blob := testutil.EncodeVocabBlob(tokens)
	v, err := vocab.Load(blob)
	require.NoError(t, err)
	require.Nil(t, v.RevVocab[256])
}

func TestRankOfAndBytesOfAgree(t *testing.T) {
	v := testutil.BuildVocabWithMerges([]testutil.MergeSpec{
		{Left: []byte("t"), Right: []byte("h")},
	})
	id, ok := v.RankOf([]byte("th"))
	require.True(t, ok)
	require.Equal(t, []byte("th"), v.BytesOf(id))
}
