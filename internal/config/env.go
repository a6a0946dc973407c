package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/quintans/faults"
	"github.com/sirupsen/logrus"
)

// Config 程式執行設定，全部來自環境變數
type Config struct {
	// ScenarioFile 示範腳本路徑，空白時使用內建腳本
	ScenarioFile string `env:"BANK_SCENARIO"`
	// LogLevel logrus 等級，log 一律輸出到 stderr
	LogLevel string `env:"BANK_LOG_LEVEL" envDefault:"warn"`
}

// Load 先載入 .env (若存在) 再解析環境變數
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, faults.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, faults.Errorf("parsing env: %w", err)
	}
	return cfg, nil
}

// Level 轉成 logrus.Level，無法辨識時回傳 warn
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
