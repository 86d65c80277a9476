package config_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/config"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "auto", cfg.Data.Format)
	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, config.DefaultTopK, cfg.Centrality.TopK)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, config.Validate(cfg))
}

func TestParseAppliesDefaultsAfterDecode(t *testing.T) {
	cfg, err := config.Parse([]byte(`
data:
  path: users.csv
  format: csv
coloring:
  palette: [red, blue]
server:
  addr: ":9090"
  read_timeout: 2s
log:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, "users.csv", cfg.Data.Path)
	assert.Equal(t, []string{"red", "blue"}, cfg.Coloring.Palette)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, config.DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"bad format":     "data:\n  format: xml\n",
		"bad level":      "log:\n  level: loud\n",
		"negative top_k": "centrality:\n  top_k: -1\n",
		"empty colour":   "coloring:\n  palette: [red, \"\"]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("unknown_key: 1\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
}

func TestLoaderReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "socialgraph.yaml")
	writeFile(t, path, "centrality:\n  top_k: 3\n")

	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Config().Centrality.TopK)

	var calls atomic.Int32
	l.OnChange(func(*config.Config) { calls.Add(1) })

	writeFile(t, path, "centrality:\n  top_k: 7\n")
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Centrality.TopK)
	assert.Equal(t, int32(1), calls.Load())

	writeFile(t, path, "centrality:\n  top_k: -2\n")
	_, err = l.Reload()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, 7, l.Config().Centrality.TopK)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLoaderWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "socialgraph.yaml")
	writeFile(t, path, "centrality:\n  top_k: 3\n")

	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)
	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeFile(t, path, "centrality:\n  top_k: 9\n")
	assert.Eventually(t, func() bool {
		return l.Config().Centrality.TopK == 9
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatchFileIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.csv")
	writeFile(t, path, "a")

	var hits atomic.Int32
	stop, err := config.WatchFile(path, nil, func() { hits.Add(1) })
	require.NoError(t, err)

	writeFile(t, filepath.Join(dir, "other.csv"), "b")
	writeFile(t, path, "c")
	assert.Eventually(t, func() bool { return hits.Load() > 0 }, 3*time.Second, 20*time.Millisecond)

	stop()
	stop()
}
