// Package config загружает настройки консольного клиента из переменных окружения.
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config содержит настройки консольного клиента.
type Config struct {
	ServerURL string `env:"INVENTORY_SERVER_URL" env-default:"http://localhost:8080/api/v1"`
	StateDir  string `env:"INVENTORY_STATE_DIR"`
}

// MustLoad читает настройки из окружения. Если каталог состояния не задан,
// используется подкаталог inventory-keeper в пользовательском каталоге настроек.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read client config: %s", err)
	}

	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("cannot resolve user config dir: %s", err)
		}
		cfg.StateDir = filepath.Join(base, "inventory-keeper")
	}

	return &cfg
}
