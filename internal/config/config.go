package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	Env         string `env:"ENV" envDefault:"development"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	// InitialCoins is granted to every newly created user.
	InitialCoins int64 `env:"INITIAL_COINS" envDefault:"1000"`
	// CostPerPlay is deducted for each "play" action.
	CostPerPlay int64 `env:"COST_PER_PLAY" envDefault:"20"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
