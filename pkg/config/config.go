package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/joho/godotenv"
)

type Config struct {
	StartingChips int64
	// Seed 0 means seed from the clock.
	Seed          int64
	AutoAce       bool
	LogLevel      string
	SnowflakeNode int64
}

// Load reads the environment, after merging an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	chips, err := getInt64("BLACKJACK_STARTING_CHIPS", entity.DefaultStartingChips)
	if err != nil {
		return nil, err
	}
	if chips < entity.MinBetAllowed {
		return nil, fmt.Errorf("invalid BLACKJACK_STARTING_CHIPS: %d (must be at least %d)", chips, entity.MinBetAllowed)
	}

	seed, err := getInt64("BLACKJACK_SEED", 0)
	if err != nil {
		return nil, err
	}

	autoAce := false
	if v := os.Getenv("BLACKJACK_AUTO_ACE"); v != "" {
		autoAce, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BLACKJACK_AUTO_ACE: %w", err)
		}
	}

	node, err := getInt64("BLACKJACK_SNOWFLAKE_NODE", 1)
	if err != nil {
		return nil, err
	}

	return &Config{
		StartingChips: chips,
		Seed:          seed,
		AutoAce:       autoAce,
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
		SnowflakeNode: node,
	}, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
