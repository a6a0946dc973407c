package main

import (
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/JoeShih716/go-savings-account/internal/adapter/out/console"
	"github.com/JoeShih716/go-savings-account/internal/config"
	"github.com/JoeShih716/go-savings-account/internal/usecase"
)

func init() {
	// stdout 留給示範輸出
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableQuote: true,
	})
}

func main() {
	// 1. 載入設定
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	log.SetLevel(cfg.Level())

	// 2. 載入示範腳本
	scenario, err := config.LoadScenario(cfg.ScenarioFile)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	logger := log.WithField("run", uuid.New().String())
	logger.WithField("scenario", scenarioName(cfg.ScenarioFile)).Info("scenario loaded")

	// 3. 執行示範
	demo := usecase.NewDemo(console.NewPrinter(os.Stdout), logger)
	if err := demo.Run(scenario); err != nil {
		logger.Fatalf("%+v", err)
	}
}

func scenarioName(path string) string {
	if path == "" {
		return "default"
	}
	return path
}
