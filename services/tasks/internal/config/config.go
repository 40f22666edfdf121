package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// EnvTest - значение флага окружения, при котором HTTP-listener не запускается
const EnvTest = "test"

type Config struct {
	Port     string
	Env      string
	LogLevel string
}

// TestMode сообщает, что процесс запущен в тестовом режиме
func (c *Config) TestMode() bool {
	return c.Env == EnvTest
}

// Addr возвращает адрес для http.Server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load читает конфигурацию только из переменных окружения
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("port", "3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("env", "")

	// Для каждого ключа берётся первая непустая переменная из списка
	if err := v.BindEnv("port", "PORT", "TASKS_PORT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("env", "APP_ENV", "NODE_ENV"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("log_level", "LOG_LEVEL"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:     v.GetString("port"),
		Env:      v.GetString("env"),
		LogLevel: v.GetString("log_level"),
	}
	if err := ValidatePort(cfg.Port); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidatePort проверяет, что порт - число в диапазоне 1..65535
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	return nil
}
