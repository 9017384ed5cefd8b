package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/tsawler/verse"
	"github.com/tsawler/verse/fusion"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), &app{logger: zap.NewNop()}, args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writePoem(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

const (
	sadText   = "The tears and sorrow and grief of a lonely broken night, crying in the dark despair."
	happyText = "Joy and laughter, a bright smile, sunshine to celebrate this wonderful blissful day."
)

func TestAnalyzeStdinJSON(t *testing.T) {
	res := execute(t, "joy joy joy", "analyze", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)

	var got analyzeResult
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "-", got.Source)
	assert.Equal(t, verse.Happy, got.Primary)
	assert.Len(t, got.Scores, len(verse.Emotions()))
}

func TestAnalyzeFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	sad := writePoem(t, dir, "sad.txt", sadText)
	happy := writePoem(t, dir, "happy.txt", happyText)

	res := execute(t, "", "analyze", "--format", "json", "--jobs", "2", sad, happy, sad)
	require.Equal(t, 0, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 3)
	want := []verse.Emotion{verse.Sad, verse.Happy, verse.Sad}
	for i, line := range lines {
		var got analyzeResult
		require.NoError(t, json.Unmarshal([]byte(line), &got))
		assert.Equal(t, want[i], got.Primary, line)
	}
}

func TestAnalyzeTable(t *testing.T) {
	path := writePoem(t, t.TempDir(), "sad.txt", sadText)
	res := execute(t, "", "analyze", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "PRIMARY")
	assert.Contains(t, res.stdout, "sad")
}

func TestAnalyzeMissingFile(t *testing.T) {
	res := execute(t, "", "analyze", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "error reading")
}

func TestConfigErrorsExitTwo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: nobody\n"), 0o644))

	tests := []struct {
		desc string
		args []string
	}{
		{"zero jobs", []string{"analyze", "--jobs", "0"}},
		{"bad format", []string{"theme", "sad", "--format", "xml"}},
		{"bad config file", []string{"--config", path, "theme", "sad"}},
		{"missing lexicon", []string{"--lexicon", filepath.Join(t.TempDir(), "lex.json"), "theme", "sad"}},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			res := execute(t, "joy", tt.args...)
			assert.Equal(t, 2, res.code)
			assert.Contains(t, res.stderr, "config: ")
		})
	}
}

func TestTheme(t *testing.T) {
	res := execute(t, "", "theme", "SAD", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)

	var got themeOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, verse.Sad, got.Emotion)
	assert.Equal(t, verse.Rain, got.Effect)
	assert.Equal(t, "linear-gradient(135deg, #667eea 0%, #764ba2 100%)", got.CSS)
	assert.Len(t, got.Colors, 2)

	res = execute(t, "", "theme", "sad")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "effect: rain")

	res = execute(t, "", "theme", "gloomy")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown emotion")
}

func TestRecommend(t *testing.T) {
	res := execute(t, "", "recommend", "sad", "--strategy", "balance")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "happy\nmotivational\npeaceful\n", res.stdout)

	res = execute(t, "", "recommend", "sad", "--strategy", "sideways")
	assert.Equal(t, 1, res.code)
}

func TestRecommendRanksFiles(t *testing.T) {
	dir := t.TempDir()
	sad := writePoem(t, dir, "sad.txt", sadText)
	happy := writePoem(t, dir, "happy.txt", happyText)

	res := execute(t, "", "recommend", "sad", "--strategy", "balance", sad, happy)
	require.Equal(t, 0, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], happy), res.stdout)
}

func TestArc(t *testing.T) {
	text := "I cry alone in the dark. Then the sunshine brings joy and laughter."
	res := execute(t, text, "arc", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)

	var got verse.Arc
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	require.Len(t, got.Segments, 2)
	assert.Equal(t, []verse.Emotion{verse.Sad, verse.Happy}, got.Path)
}

func TestFuseStatic(t *testing.T) {
	dir := t.TempDir()
	sad := writePoem(t, dir, "night_rain.txt", sadText)
	happy := writePoem(t, dir, "morning.txt", happyText)

	res := execute(t, "", "fuse", "--provider", "static", sad, happy)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Fusion: night rain × morning")
	assert.Contains(t, res.stdout, "(alternate)")
	assert.Contains(t, res.stdout, fusion.PlaceholderPoem)

	res = execute(t, "", "fuse", "--provider", "static", "--style", "thematic", "--format", "json", sad, happy)
	require.Equal(t, 0, res.code, res.stderr)
	var got fusion.Fusion
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, fusion.Thematic, got.Style)
	assert.Equal(t, got.CreatedAt.Add(fusion.TTL), got.ExpiresAt)
}

func TestFuseErrors(t *testing.T) {
	dir := t.TempDir()
	sad := writePoem(t, dir, "sad.txt", sadText)
	short := writePoem(t, dir, "short.txt", "tiny")

	res := execute(t, "", "fuse", "--provider", "static", sad, sad)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "cannot fuse a poem with itself")

	res = execute(t, "", "fuse", "--provider", "static", sad, short)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "substantial")

	res = execute(t, "", "fuse", "--provider", "static", "--style", "collage", sad, short)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown fusion style")

	t.Setenv("OPENAI_API_KEY", "")
	res = execute(t, "", "fuse", "--provider", "openai", sad, short)
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "OPENAI_API_KEY")
}
