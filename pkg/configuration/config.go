package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
)

// ConfDemo — параметры демонстрации
type ConfDemo struct {
	Sequence []int `env:"DEMO_SEQUENCE" env-default:"1,2,3,4,5,6" env-separator:","`
}

// ConfLogger — параметры логгера
type ConfLogger struct {
	AppName string `env:"APP_NAME"  env-default:"ReverseArray"`
	Env     string `env:"APP_ENV"   env-default:""`
	Level   string `env:"LOG_LEVEL" env-default:"error"`
}

// Config — корневая структура конфигурации
type Config struct {
	Demo   ConfDemo
	Logger ConfLogger
}

// допустимые значения LOG_LEVEL
var levels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// ReadConfig загружает .env файл из корня проекта и возвращает заполненную структуру Config
func ReadConfig() (*Config, error) {

	return ReadConfigPath("./.env")
}

// ReadConfigPath загружает конфигурацию из файла path, а если файла нет — только из окружения
func ReadConfigPath(path string) (*Config, error) {

	var config Config

	_, err := os.Stat(path)
	switch {
	case err == nil:
		// загружаем конфигурацию из файла .env напрямую в структуру
		if err := cleanenvport.LoadPath(path, &config); err != nil {
			return nil, fmt.Errorf("ошибка чтения файла конфигурации %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// файла нет, берём переменные окружения и значения по умолчанию
		if err := cleanenv.ReadEnv(&config); err != nil {
			return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
		}
	default:
		return nil, fmt.Errorf("ошибка доступа к файлу конфигурации %s: %w", path, err)
	}

	if _, ok := levels[config.Logger.Level]; !ok {
		return nil, fmt.Errorf("неизвестный уровень логирования LOG_LEVEL=%q", config.Logger.Level)
	}

	return &config, nil
}
