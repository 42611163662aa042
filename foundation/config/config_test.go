package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superfeelapi/goEmotionDetector/foundation/config"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"emotion-detector"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestParseDefaults(t *testing.T) {
	withArgs(t)

	cfg, help, err := config.Parse("test", "unit", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, help)

	assert.Equal(t, "0.0.0.0:5000", cfg.Web.Host)
	assert.Equal(t, 10*time.Second, cfg.EmotionPredict.Timeout)
	assert.Equal(t, "emotion_aggregated-workflow_lang_en_stock", cfg.EmotionPredict.ModelID)
	assert.Equal(t, "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict", cfg.EmotionPredict.ApiEndpoint)
	assert.Equal(t, "emotion:analysis", cfg.Redis.Channel)
	assert.Empty(t, cfg.Redis.Address)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestParseEnvironment(t *testing.T) {
	withArgs(t)
	t.Setenv("EMOTION_WEB_HOST", "127.0.0.1:8080")
	t.Setenv("EMOTION_EMOTION_PREDICT_TIMEOUT", "3s")

	cfg, _, err := config.Parse("test", "unit")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Web.Host)
	assert.Equal(t, 3*time.Second, cfg.EmotionPredict.Timeout)
}

func TestParseEnvFile(t *testing.T) {
	withArgs(t)
	t.Setenv("EMOTION_WEB_HOST", "127.0.0.1:9000")

	// godotenv never overrides a variable that is already set. Register the
	// other key with t.Setenv first so it is restored after the test.
	t.Setenv("EMOTION_LOGGER_LEVEL", "")
	os.Unsetenv("EMOTION_LOGGER_LEVEL")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("EMOTION_WEB_HOST=10.0.0.1:1\nEMOTION_LOGGER_LEVEL=debug\n"), 0o600))

	cfg, _, err := config.Parse("test", "unit", file)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Web.Host)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestParseVersion(t *testing.T) {
	withArgs(t, "--version")

	_, help, err := config.Parse("1.2.3", "unit")
	require.Error(t, err)
	assert.True(t, errors.Is(err, conf.ErrHelpWanted))
	assert.Contains(t, help, "1.2.3")
}

func TestParseBadDuration(t *testing.T) {
	withArgs(t)
	t.Setenv("EMOTION_WEB_READ_TIMEOUT", "soon")

	_, _, err := config.Parse("test", "unit")
	require.Error(t, err)
	assert.False(t, errors.Is(err, conf.ErrHelpWanted))
}

func TestString(t *testing.T) {
	withArgs(t)
	t.Setenv("EMOTION_REDIS_PASSWORD", "hunter2")

	cfg, _, err := config.Parse("test", "unit")
	require.NoError(t, err)

	out, err := config.String(&cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "0.0.0.0:5000")
	assert.NotContains(t, out, "hunter2")
}
