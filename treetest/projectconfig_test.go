package treetest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. Stand-in for t.Chdir, which
// requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

func TestLoadProjectConfig_ReturnsDefaults_When_NoFilePresent(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := LoadProjectConfig()

	assert.Empty(t, cfg.Theme)
	assert.Equal(t, DefaultStatsColumn, cfg.Report.StatsColumn)
	assert.False(t, cfg.Report.HideLegend)
}

func TestLoadProjectConfig_ReadsSettings_When_FilePresent(t *testing.T) {
	dir := t.TempDir()
	content := `theme: mono
report:
  title: nightly conformance
  stats_column: 64
  hide_legend: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".treetest.yaml"), []byte(content), 0o600))
	chdir(t, dir)

	cfg := LoadProjectConfig()

	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "nightly conformance", cfg.Report.Title)
	assert.Equal(t, 64, cfg.Report.StatsColumn)
	assert.True(t, cfg.Report.HideLegend)
}

func TestLoadProjectConfig_FallsBackToDefaults_When_FileMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".treetest.yaml"), []byte(":\n\t- not yaml"), 0o600))
	chdir(t, dir)

	cfg := LoadProjectConfig()

	assert.Equal(t, DefaultStatsColumn, cfg.Report.StatsColumn)
}

func TestNewRunnerFromProject_AppliesFileSettings(t *testing.T) {
	dir := t.TempDir()
	content := `theme: mono
report:
  stats_column: 72
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".treetest.yaml"), []byte(content), 0o600))
	chdir(t, dir)

	runner := NewRunnerFromProject()

	require.NotNil(t, runner)
	assert.Equal(t, 72, runner.renderer.statsColumn)
	assert.Equal(t, "mono", runner.renderer.theme.Name)
}
