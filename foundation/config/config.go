// Package config loads the service configuration from .env files, the
// environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Prefix namespaces every environment variable, e.g. EMOTION_WEB_HOST.
const Prefix = "EMOTION"

type Config struct {
	conf.Version
	Web struct {
		Host            string        `conf:"default:0.0.0.0:5000"`
		ReadTimeout     time.Duration `conf:"default:5s"`
		WriteTimeout    time.Duration `conf:"default:15s"`
		IdleTimeout     time.Duration `conf:"default:120s"`
		ShutdownTimeout time.Duration `conf:"default:20s"`
	}
	EmotionPredict struct {
		ApiEndpoint string        `conf:"default:https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"`
		ModelID     string        `conf:"default:emotion_aggregated-workflow_lang_en_stock"`
		Timeout     time.Duration `conf:"default:10s"`
	}
	Redis struct {
		Address  string
		Password string `conf:"noprint"`
		Channel  string `conf:"default:emotion:analysis"`
	}
	Logger struct {
		LogDirectory string
		Level        string `conf:"default:info"`
	}
}

// Parse loads envFiles (missing files are skipped) and then the environment
// and flags. The returned string is non-empty when --help or --version was
// requested; err is conf.ErrHelpWanted in that case.
func Parse(build string, desc string, envFiles ...string) (Config, string, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, "", fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Config{
		Version: conf.Version{
			Build: build,
			Desc:  desc,
		},
	}

	help, err := conf.Parse(Prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return cfg, help, err
		}
		return Config{}, "", fmt.Errorf("parsing config: %w", err)
	}

	return cfg, "", nil
}

// String renders cfg for the startup log without noprint fields.
func String(cfg *Config) (string, error) {
	return conf.String(cfg)
}
