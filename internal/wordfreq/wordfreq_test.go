package wordfreq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictbench/dictbench/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.BooksDir = filepath.Join(dir, "livros")
	cfg.ResultsDir = filepath.Join(dir, "resultados")
	require.NoError(t, os.MkdirAll(cfg.BooksDir, 0o755))
	return cfg
}

func writeBook(t *testing.T, cfg *config.Config, stem, contents string) {
	t.Helper()
	path := filepath.Join(cfg.BooksDir, stem+".txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestParse(t *testing.T) {
	ss, err := Parse("avl")
	require.NoError(t, err)
	assert.Equal(t, []Structure{AVL}, ss)

	ss, err = Parse("all")
	require.NoError(t, err)
	assert.Equal(t, All, ss)

	_, err = Parse("bogus")
	assert.Error(t, err)
}

func TestBuildWordFrequencyScenario(t *testing.T) {
	cfg := testConfig(t)
	writeBook(t, cfg, "sample", "the cat and the dog")

	for _, st := range All {
		r, err := Build(cfg, st, "sample")
		require.NoError(t, err)
		assert.Equal(t, 4, r.Size, "structure %s", st)
		assert.Contains(t, r.Report, "(and, 1)")
		assert.Contains(t, r.Report, "(cat, 1)")
		assert.Contains(t, r.Report, "(dog, 1)")
		assert.Contains(t, r.Report, "(the, 2)")
	}
}

func TestBuildHyphenationScenario(t *testing.T) {
	cfg := testConfig(t)
	writeBook(t, cfg, "hyphens", "well-known -dash trailing-")

	r, err := Build(cfg, AVL, "hyphens")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Size)
	assert.Contains(t, r.Report, "(well-known, 1)")
	assert.Contains(t, r.Report, "(dash, 1)")
	assert.Contains(t, r.Report, "(trailing, 1)")
}

func TestBuildMissingFileReturnsWrappedError(t *testing.T) {
	cfg := testConfig(t)
	_, err := Build(cfg, AVL, "missing")
	assert.Error(t, err)
}

func TestWriteReportCreatesFile(t *testing.T) {
	cfg := testConfig(t)
	writeBook(t, cfg, "sample", "one two two three")

	r, err := Build(cfg, ChainedHash, "sample")
	require.NoError(t, err)
	require.NoError(t, WriteReport(cfg, r))

	path := ReportPath(cfg, ChainedHash, "sample")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r.Report, string(data))
}
