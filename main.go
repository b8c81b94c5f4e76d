package main

import (
	"log"
	"os"

	"github.com/IPampurin/ReverseArray/pkg/configuration"
	"github.com/IPampurin/ReverseArray/pkg/demo"
	"github.com/wb-go/wbf/logger"
)

func main() {

	// считываем .env файл
	cfg, err := configuration.ReadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// по умолчанию пишем только ошибки, чтобы не мешать выводу в stdout
	level := logger.ErrorLevel
	switch cfg.Logger.Level {
	case "debug":
		level = logger.DebugLevel
	case "info":
		level = logger.InfoLevel
	case "warn":
		level = logger.WarnLevel
	}

	// настраиваем логгер
	appLogger, err := logger.InitLogger(
		logger.ZapEngine,
		cfg.Logger.AppName,
		cfg.Logger.Env,
		logger.WithLevel(level),
	)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}

	// подопытная последовательность
	seq := cfg.Demo.Sequence
	if len(seq) == 0 {
		seq = demo.SampleSequence()
	}

	if err := demo.Run(os.Stdout, seq, appLogger); err != nil {
		appLogger.Error("демонстрация завершилась с ошибкой", "error", err)
		os.Exit(1)
	}
}
