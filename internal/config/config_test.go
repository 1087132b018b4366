package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, "", cfg.Output.Dir)
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.False(t, cfg.Report.Enabled)
}

func TestLoadConfigFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test-config-*.yaml")
	require.NoError(t, err)
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	configContent := `
logging:
  level: "debug"
  format: "json"
  output: "stderr"

output:
  indent: 2

report:
  enabled: true
`
	_, err = tmpfile.Write([]byte(configContent))
	require.NoError(t, err)
	_ = tmpfile.Close()

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.True(t, cfg.Report.Enabled)
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadInvalidConfig(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test-config-*.yaml")
	require.NoError(t, err)
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	configContent := `
logging:
  level: "verbose"
`
	_, err = tmpfile.Write([]byte(configContent))
	require.NoError(t, err)
	_ = tmpfile.Close()

	cfg, err := Load(tmpfile.Name())
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CUTCHECK_LOGGING_LEVEL", "debug")
	t.Setenv("CUTCHECK_OUTPUT_INDENT", "8")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Output.Indent)
}
