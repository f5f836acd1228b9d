package emitter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEmitter returns an Emitter logging JSON lines into the returned buffer.
func newTestEmitter(opts ...Option) (*Emitter, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(zerolog.New(&buf), opts...), &buf
}

// logLines decodes every JSON log line written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestEmitWritesDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.yaml")
	e, buf := newTestEmitter()

	res := e.Emit(Request{Dir: dir, Classes: []string{"pizza", "sushi"}, Output: out})
	require.True(t, res.IsOk(), "emit failed: %v", res.Error())

	emission := res.MustGet()
	assert.Equal(t, out, emission.Path)
	assert.Equal(t, 2, emission.Classes)
	assert.NotEmpty(t, emission.ID)

	data, err := os.ReadFile(filepath.Clean(out))
	require.NoError(t, err)
	assert.Equal(t, Render(dir, []string{"pizza", "sushi"}), string(data))
	assert.Len(t, data, emission.Bytes)

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, out, lines[0]["path"])
	assert.Equal(t, emission.ID, lines[0]["emission_id"])
}

func TestEmitTruncatesExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.yaml")
	require.NoError(t, os.WriteFile(out, []byte(strings.Repeat("stale content\n", 100)), 0o600))

	e, _ := newTestEmitter()
	res := e.Emit(Request{Dir: dir, Classes: []string{"a"}, Output: out})
	require.True(t, res.IsOk())

	data, err := os.ReadFile(filepath.Clean(out))
	require.NoError(t, err)
	assert.Equal(t, Render(dir, []string{"a"}), string(data))
}

func TestEmitMissingDatasetDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	missing := filepath.Join(base, "does-not-exist")
	out := filepath.Join(base, "out.yaml")
	e, buf := newTestEmitter()

	res := e.Emit(Request{Dir: missing, Classes: []string{"a"}, Output: out})
	require.True(t, res.IsError())
	assert.ErrorIs(t, res.Error(), ErrDatasetDirectoryMissing)
	assert.Equal(t, KindDatasetDirectoryMissing, KindOf(res.Error()))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "output must not be created")

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, string(KindDatasetDirectoryMissing), lines[0]["kind"])
}

func TestEmitDatasetPathIsFile(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	file := filepath.Join(base, "dataset")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	e, _ := newTestEmitter()
	res := e.Emit(Request{Dir: file, Classes: []string{"a"}, Output: filepath.Join(base, "out.yaml")})

	assert.ErrorIs(t, res.Error(), ErrDatasetDirectoryMissing)
}

func TestEmitWriteFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name   string
		output string
	}{
		{name: "missing parent", output: filepath.Join(dir, "missing", "out.yaml")},
		{name: "output is a directory", output: dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, buf := newTestEmitter()
			res := e.Emit(Request{Dir: dir, Classes: []string{"a"}, Output: tt.output})

			require.True(t, res.IsError())
			assert.ErrorIs(t, res.Error(), ErrWriteFailure)

			lines := logLines(t, buf)
			require.Len(t, lines, 1)
			assert.Equal(t, string(KindWriteFailure), lines[0]["kind"])
			assert.Contains(t, lines[0]["error"], tt.output)
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e, _ := newTestEmitter()

	assert.True(t, e.Generate(dir, []string{"pizza"}, filepath.Join(dir, "ok.yaml")))
	assert.False(t, e.Generate(filepath.Join(dir, "nope"), []string{"pizza"}, filepath.Join(dir, "bad.yaml")))
}

func TestEmitAcceptsEmptyClassesByDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.yaml")
	e, _ := newTestEmitter()

	res := e.Emit(Request{Dir: dir, Output: out})
	require.True(t, res.IsOk())
	assert.Equal(t, 0, res.MustGet().Classes)
}

func TestEmitStrictClassNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		classes []string
		wantErr bool
	}{
		{name: "valid", classes: []string{"pizza", "grilled_chicken"}},
		{name: "empty list", classes: nil, wantErr: true},
		{name: "empty name", classes: []string{"pizza", ""}, wantErr: true},
		{name: "quote", classes: []string{"it's"}, wantErr: true},
		{name: "bracket", classes: []string{"a]"}, wantErr: true},
		{name: "colon", classes: []string{"a: b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := filepath.Join(dir, tt.name+".yaml")
			e, _ := newTestEmitter(WithStrictClassNames())
			require.True(t, e.Strict())

			res := e.Emit(Request{Dir: dir, Classes: tt.classes, Output: out})
			if !tt.wantErr {
				assert.True(t, res.IsOk(), "unexpected error: %v", res.Error())
				return
			}

			assert.ErrorIs(t, res.Error(), ErrInvalidClassNames)
			_, err := os.Stat(out)
			assert.True(t, os.IsNotExist(err), "output must not be created")
		})
	}
}
