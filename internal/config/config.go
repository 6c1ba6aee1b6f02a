package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8000"`
	CorpusPath        string `env:"CORPUS_PATH"`
	RateWindowSeconds int    `env:"RATE_WINDOW_SECONDS" envDefault:"60"`
	RateMaxRequests   int    `env:"RATE_MAX_REQUESTS" envDefault:"60"`
	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
