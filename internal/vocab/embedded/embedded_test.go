package embedded_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tokencost/tokencost/internal/vocab"
	"github.com/tokencost/tokencost/internal/vocab/embedded"
)

func TestCl100kBaseLoads(t *testing.T) {
	v, err := vocab.Load(embedded.Cl100kBase)
	require.NoError(t, err)
	require.Greater(t, v.Len(), 256)
}

func TestO200kBaseLoads(t *testing.T) {
	v, err := vocab.Load(embedded.O200kBase)
	require.NoError(t, err)
	require.Greater(t, v.Len(), 256)
}

func TestEncodingsHaveDifferentVocabularySizes(t *testing.T) {
	cl, err := vocab.Load(embedded.Cl100kBase)
	require.NoError(t, err)
	o2, err := vocab.Load(embedded.O200kBase)
	require.NoError(t, err)
	require.NotEqual(t, cl.Len(), o2.Len())
}
