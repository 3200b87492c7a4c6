// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1, cfg.Subsample)
	assert.Equal(t, "ConfusionMatrix.txt", cfg.OutFile)
	assert.Equal(t, ".pcl", cfg.Extensions.Machine)
	assert.Equal(t, ".acl", cfg.Extensions.Expert)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aprt.yaml")
	body := `
subsample: 3
out_dir: /data/out
extensions:
  machine: .pcl.gz
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Subsample)
	assert.Equal(t, "/data/out", cfg.OutDir)
	assert.Equal(t, ".pcl.gz", cfg.Extensions.Machine)
	// untouched keys keep their defaults
	assert.Equal(t, ".acl", cfg.Extensions.Expert)
	assert.Equal(t, "ConfusionMatrix.txt", cfg.OutFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"zero subsample":  "subsample: 0\n",
		"empty out_file":  "out_file: \"\"\n",
		"empty extension": "extensions:\n  expert: \"\"\n",
		"broken yaml":     "subsample: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "aprt.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
