package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BANK_SCENARIO", "")
	t.Setenv("BANK_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	require.Empty(t, cfg.ScenarioFile)
	require.Equal(t, logrus.WarnLevel, cfg.Level())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BANK_SCENARIO", "/tmp/scenario.yaml")
	t.Setenv("BANK_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	require.Equal(t, "/tmp/scenario.yaml", cfg.ScenarioFile)
	require.Equal(t, logrus.DebugLevel, cfg.Level())
}

func TestLoadDotenv(t *testing.T) {
	// godotenv 不覆寫已存在的環境變數，先移除；t.Setenv 會在結束後還原
	t.Setenv("BANK_SCENARIO", "")
	require.NoError(t, os.Unsetenv("BANK_SCENARIO"))
	path := writeFile(t, ".env", "BANK_SCENARIO=custom.yaml\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "custom.yaml", cfg.ScenarioFile)
}

func TestLevelFallback(t *testing.T) {
	require.Equal(t, logrus.WarnLevel, Config{LogLevel: "loud"}.Level())
}
