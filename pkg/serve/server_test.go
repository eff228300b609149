package serve

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/praetorian-inc/schematic/pkg/analyzer"
	"github.com/praetorian-inc/schematic/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `"467..114..\n...*......\n..35..633.\n......#...\n617*......\n.....+.58.\n..592.....\n......755.\n...$.*....\n.664.598.."`

func newCore(t *testing.T) *analyzer.Core {
	t.Helper()
	core, err := analyzer.NewCore(analyzer.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { core.Close() })
	return core
}

// run feeds input to a fresh server and returns the response lines.
func run(t *testing.T, core *analyzer.Core, input string) []Response {
	t.Helper()
	out := &bytes.Buffer{}
	err := NewServer(core, strings.NewReader(input), out).Run(context.Background())
	require.NoError(t, err)

	var responses []Response
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var resp Response
		require.NoError(t, json.Unmarshal([]byte(line), &resp))
		responses = append(responses, resp)
	}
	return responses
}

func TestServer_SendsReadyOnStart(t *testing.T) {
	core := newCore(t)
	out := &bytes.Buffer{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = NewServer(core, strings.NewReader(""), out).Run(ctx)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ready", resp.Type)

	var ready ReadyData
	require.NoError(t, json.Unmarshal(resp.Data, &ready))
	assert.Equal(t, Version, ready.Version)
}

func TestServer_Analyze(t *testing.T) {
	// Arrange
	core := newCore(t)
	request := `{"type":"analyze","payload":{"content":` + sampleJSON + `,"source":"sample"}}` + "\n"

	// Act
	responses := run(t, core, request)

	// Assert
	require.Len(t, responses, 2)
	assert.True(t, responses[1].Success)
	assert.Equal(t, TypeAnalyze, responses[1].Type)

	var sum types.Summary
	require.NoError(t, json.Unmarshal(responses[1].Data, &sum))
	assert.Equal(t, uint64(4361), sum.PartSum)
	assert.Equal(t, uint64(467835), sum.GearSum)
	assert.Equal(t, "sample", sum.Source)
}

func TestServer_AnalyzeError(t *testing.T) {
	core := newCore(t)
	request := `{"type":"analyze","payload":{"content":"12\n345","source":"bad"}}` + "\n"

	responses := run(t, core, request)

	require.Len(t, responses, 2)
	assert.False(t, responses[1].Success)
	assert.Equal(t, TypeAnalyze, responses[1].Type)
	assert.Contains(t, responses[1].Error, "irregular grid")
}

func TestServer_AnalyzeBatch(t *testing.T) {
	core := newCore(t)

	// Run repeatedly: the batch response must be sent even when EOF
	// is seen before the pending request is processed.
	for i := 0; i < 10; i++ {
		request := `{"type":"analyze_batch","payload":{"items":[{"source":"s1","content":"7*\n.3"},{"source":"s2","content":` + sampleJSON + `}]}}` + "\n"

		responses := run(t, core, request)

		require.Len(t, responses, 2, "iteration %d", i)
		assert.True(t, responses[1].Success, "iteration %d", i)
		assert.Equal(t, TypeAnalyzeBatch, responses[1].Type, "iteration %d", i)

		var batch analyzer.BatchResult
		require.NoError(t, json.Unmarshal(responses[1].Data, &batch))
		assert.Len(t, batch.Results, 2)
		assert.Equal(t, uint64(4361+10), batch.PartSum)
		assert.Equal(t, uint64(467835+21), batch.GearSum)
	}
}

func TestServer_Stats(t *testing.T) {
	core := newCore(t)
	request := `{"type":"analyze","payload":{"content":"7*\n.3","source":"s1"}}` + "\n" +
		`{"type":"stats","payload":{}}` + "\n"

	responses := run(t, core, request)

	require.Len(t, responses, 3)
	var stats StatsData
	require.NoError(t, json.Unmarshal(responses[2].Data, &stats))
	assert.Equal(t, StatsData{Schematics: 1, PartNumbers: 2, GearRatios: 1}, stats)
}

func TestServer_GracefulShutdownOnContext(t *testing.T) {
	core := newCore(t)
	pr, pw := io.Pipe()
	out := &bytes.Buffer{}
	srv := NewServer(core, pr, out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- srv.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	pw.Close()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestServer_CloseCommand(t *testing.T) {
	core := newCore(t)
	request := `{"type":"close","payload":{}}` + "\n" +
		`{"type":"analyze","payload":{"content":"1*","source":"after"}}` + "\n"

	responses := run(t, core, request)

	require.Len(t, responses, 1) // only ready
}

func TestServer_UnknownCommand(t *testing.T) {
	core := newCore(t)

	responses := run(t, core, `{"type":"invalid","payload":{}}`+"\n")

	require.Len(t, responses, 2)
	assert.False(t, responses[1].Success)
	assert.Contains(t, responses[1].Error, "unknown request type")
}

func TestServer_MalformedJSON(t *testing.T) {
	core := newCore(t)

	responses := run(t, core, `{invalid json}`+"\n")

	require.GreaterOrEqual(t, len(responses), 2)
	assert.False(t, responses[1].Success)
	assert.Equal(t, "decode", responses[1].Type)
}
