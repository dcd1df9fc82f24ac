package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config armazena as configurações da aplicação
type Config struct {
	APIKey   string
	Token    string
	LogLevel string
	LogJSON  bool
}

// Load carrega as configurações do ambiente
func Load() (*Config, error) {
	// Tenta carregar .env de múltiplos locais
	_ = godotenv.Load()          // ./.env
	_ = godotenv.Load("../.env") // raiz do projeto

	cfg := &Config{
		APIKey:   os.Getenv("TRELLO_API_KEY"),
		Token:    os.Getenv("TRELLO_TOKEN"),
		LogLevel: os.Getenv("LOG_LEVEL"),
	}
	cfg.LogJSON, _ = strconv.ParseBool(os.Getenv("LOG_JSON"))

	// Validações obrigatórias
	if cfg.APIKey == "" {
		return nil, errors.New("TRELLO_API_KEY não configurado")
	}

	if cfg.Token == "" {
		return nil, errors.New("TRELLO_TOKEN não configurado")
	}

	// Defaults: ferramenta interativa loga pouco por padrão
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return cfg, nil
}
