package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"host=localhost user=postgres password=postgres dbname=crm_marvic port=5432 sslmode=disable"`

	// Secreto compartido con Make (Integromat) para el webhook de leads
	WebhookSecret string `env:"API_SECRET_KEY" envDefault:"crm-marvic-webhook-secret-2024"`

	JWTSecret     string `env:"JWT_SECRET" envDefault:"cambiar-en-produccion"`
	JWTTTLMinutes int    `env:"JWT_TTL_MINUTES" envDefault:"60"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Máximo de leads devueltos por el listado de leads recientes
	LeadListLimit int `env:"LEAD_LIST_LIMIT" envDefault:"50"`
}

// Load lee .env si existe y construye la configuración desde el entorno.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
