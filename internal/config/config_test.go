package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("LEILOES_SOURCE", "")
	t.Setenv("CURRENCY_SYMBOL", "")
	t.Setenv("API_TIMEOUT_MS", "")

	cfg := FromEnv()
	if cfg.APIBaseURL != "http://localhost:3001" {
		t.Errorf("base URL default errada: %q", cfg.APIBaseURL)
	}
	if cfg.LeiloesSource != "mock" {
		t.Errorf("fonte default errada: %q", cfg.LeiloesSource)
	}
	if cfg.CurrencySymbol != "R$" {
		t.Errorf("símbolo default errado: %q", cfg.CurrencySymbol)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("timeout default errado: %v", cfg.RequestTimeout)
	}
}

func TestFromEnvSobrescreve(t *testing.T) {
	t.Setenv("API_URL", "https://api.poketrade.app")
	t.Setenv("LEILOES_SOURCE", "api")
	t.Setenv("API_TIMEOUT_MS", "2500")

	cfg := FromEnv()
	if cfg.APIBaseURL != "https://api.poketrade.app" {
		t.Errorf("base URL não sobrescrita: %q", cfg.APIBaseURL)
	}
	if cfg.LeiloesSource != "api" {
		t.Errorf("fonte não sobrescrita: %q", cfg.LeiloesSource)
	}
	if cfg.RequestTimeout != 2500*time.Millisecond {
		t.Errorf("timeout não sobrescrito: %v", cfg.RequestTimeout)
	}
}

func TestTimeoutInvalidoUsaPadrao(t *testing.T) {
	t.Setenv("API_TIMEOUT_MS", "abc")
	if d := getDuration("API_TIMEOUT_MS", 10*time.Second); d != 10*time.Second {
		t.Errorf("valor ilegível deveria cair no padrão, veio %v", d)
	}
}
