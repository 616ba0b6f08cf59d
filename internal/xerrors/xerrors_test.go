package xerrors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tokencost/tokencost/internal/xerrors"
)

func TestExitCodes(t *testing.T) {
	cases := map[xerrors.Kind]int{
		xerrors.Ok:      0,
		xerrors.Generic: 1,
		xerrors.Usage:   2,
		xerrors.Quota:   64,
		xerrors.Partial: 65,
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.ExitCode())
	}
}

func TestKindOfUnwrapsWrappedError(t *testing.T) {
	base := xerrors.New(xerrors.Quota, fmt.Errorf("token budget exceeded"))
	wrapped := fmt.Errorf("stream: %w", base)
	require.Equal(t, xerrors.Quota, xerrors.KindOf(wrapped))
}

func TestKindOfDefaultsToGenericForForeignErrors(t *testing.T) {
	require.Equal(t, xerrors.Generic, xerrors.KindOf(fmt.Errorf("boom")))
}

func TestKindOfNilIsOk(t *testing.T) {
	require.Equal(t, xerrors.Ok, xerrors.KindOf(nil))
}
