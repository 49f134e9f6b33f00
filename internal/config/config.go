package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv carrega o .env quando existir. Em produção as variáveis vêm do ambiente.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Config reúne tudo que a camada de dados consome do ambiente.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	// LeiloesSource escolhe a fonte preferida dos leilões: "api" ou "mock".
	LeiloesSource string
	// CurrencySymbol sobrescreve o símbolo exibido (padrão R$).
	CurrencySymbol string
	// TokenFile guarda o JWT quando não há provedor externo de sessão.
	TokenFile string
	// MockStorePath é o arquivo JSON usado pelo store de leilões mock.
	MockStorePath string
	// Port do stub backend local (cmd/mockapi).
	Port string
}

func FromEnv() Config {
	return Config{
		APIBaseURL:     getEnv("API_URL", "http://localhost:3001"),
		RequestTimeout: getDuration("API_TIMEOUT_MS", 10*time.Second),
		LeiloesSource:  getEnv("LEILOES_SOURCE", "mock"),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "R$"),
		TokenFile:      getEnv("TOKEN_FILE", defaultTokenFile()),
		MockStorePath:  getEnv("MOCK_STORE_PATH", defaultMockStorePath()),
		Port:           getEnv("PORT", "3001"),
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".poketrade_token"
	}
	return home + "/.poketrade_token"
}

func defaultMockStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".poketrade_leiloes_mock_v1.json"
	}
	return home + "/.poketrade_leiloes_mock_v1.json"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		log.Printf("warning: %s inválido (%q), usando padrão", key, raw)
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}
