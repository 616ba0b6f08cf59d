package stream_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tokencost/tokencost/internal/applog"
	"github.com/tokencost/tokencost/internal/config"
	"github.com/tokencost/tokencost/internal/modelreg"
	"github.com/tokencost/tokencost/internal/pricing"
	"github.com/tokencost/tokencost/internal/record"
	"github.com/tokencost/tokencost/internal/stream"
)

type constTokenizer struct{ n int }

func (c constTokenizer) Encode(input []byte) []uint32 {
	ids := make([]uint32, c.n)
	return ids
}

func newDriver(cfg config.Run, tok record.Tokenizer) *stream.Driver {
	return &stream.Driver{
		Cfg: cfg,
		Tok: tok,
		Params: record.Params{
			TextField: "text",
			Mode:      cfg.Mode,
			Accuracy:  modelreg.Exact,
			Rates:     pricing.Rates{InputPerMillion: 1, OutputPerMillion: 1},
		},
		Log: applog.New(true),
	}
}

func TestSingleWorkerPreservesLineOrder(t *testing.T) {
	input := `{"text":"a","id":1}
{"text":"b","id":2}
{"text":"c","id":3}
`
	d := newDriver(config.Run{Workers: 1, TextField: "text"}, constTokenizer{n: 1})
	var out bytes.Buffer
	kind, err := d.Run(strings.NewReader(input), &out)
	require.NoError(t, err)
	require.Equal(t, 0, kind.ExitCode())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		require.Equal(t, int64(i+1), gjson.Get(line, "id").Int())
	}
}

func TestSingleWorkerSkipsInvalidRecordsAndReportsPartial(t *testing.T) {
	input := `{"text":"a"}
{not json}
{"text":"c"}
`
	d := newDriver(config.Run{Workers: 1, TextField: "text"}, constTokenizer{n: 1})
	var out bytes.Buffer
	kind, err := d.Run(strings.NewReader(input), &out)
	require.Error(t, err)
	require.Equal(t, 65, kind.ExitCode())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
}

func TestSingleWorkerFailOnErrorAbortsStream(t *testing.T) {
	input := `{"text":"a"}
{not json}
{"text":"c"}
`
	d := newDriver(config.Run{Workers: 1, TextField: "text", FailOnError: true}, constTokenizer{n: 1})
	var out bytes.Buffer
	kind, err := d.Run(strings.NewReader(input), &out)
	require.Error(t, err)
	require.Equal(t, 1, kind.ExitCode())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 1)
}

func TestQuotaHaltsStreamAndReportsQuotaKind(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString(`{"text":"hi","id":` + strconv.Itoa(i) + "}\n")
	}
	d := newDriver(config.Run{Workers: 1, TextField: "text", MaxTokens: 3}, constTokenizer{n: 1})
	var out bytes.Buffer
	kind, err := d.Run(strings.NewReader(b.String()), &out)
	require.Error(t, err)
	require.Equal(t, 64, kind.ExitCode())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
}

func TestQuotaHaltsStreamWhenCrossedOnFinalLineWithoutTrailingNewline(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 2; i++ {
		b.WriteString(`{"text":"hi","id":` + strconv.Itoa(i) + "}\n")
	}
	b.WriteString(`{"text":"hi","id":2}`) // no trailing newline: final ReadSlice returns io.EOF with this line's bytes
	d := newDriver(config.Run{Workers: 1, TextField: "text", MaxTokens: 3}, constTokenizer{n: 1})
	var out bytes.Buffer
	kind, err := d.Run(strings.NewReader(b.String()), &out)
	require.Error(t, err)
	require.Equal(t, 64, kind.ExitCode())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
}

func TestMultiWorkerEnrichesEveryLineRegardlessOfOrder(t *testing.T) {
	var b strings.Builder
	const n = 200
	for i := 0; i < n; i++ {
		b.WriteString(`{"text":"hello","id":` + strconv.Itoa(i) + "}\n")
	}
	d := newDriver(config.Run{Workers: 8, TextField: "text"}, constTokenizer{n: 2})
	var out bytes.Buffer
	kind, err := d.Run(strings.NewReader(b.String()), &out)
	require.NoError(t, err)
	require.Equal(t, 0, kind.ExitCode())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, n)

	seen := make(map[int64]bool, n)
	for _, line := range lines {
		id := gjson.Get(line, "id").Int()
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
}

func TestMultiWorkerDisabledWhenQuotaConfigured(t *testing.T) {
	cfg := config.Run{Workers: 8, MaxTokens: 100}
	require.Equal(t, 1, cfg.EffectiveWorkers())
}
