package config

import (
    "fmt"
    "os"
    "strconv"

    "github.com/joho/godotenv"
)

// Config holds environment-based settings
type Config struct {
    ServerAddress  string
    DatabaseURL    string
    MigrationsPath string

    RedisAddress  string
    RedisUsername string
    RedisPassword string

    SessionSecret string
    // idle expiry of the session cookie, in seconds
    SessionMaxAge int
}

// Load reads configuration from environment variables.
// A .env file is picked up if one exists.
func Load() (*Config, error) {
    _ = godotenv.Load()

    dbURL := os.Getenv("DATABASE_URL")
    if dbURL == "" {
        return nil, fmt.Errorf("DATABASE_URL is required")
    }
    secret := os.Getenv("SESSION_SECRET")
    if secret == "" {
        return nil, fmt.Errorf("SESSION_SECRET is required")
    }
    addr := os.Getenv("SERVER_ADDRESS")
    if addr == "" {
        addr = ":7777"
    }
    migrations := os.Getenv("MIGRATIONS_PATH")
    if migrations == "" {
        migrations = "./migrations"
    }
    redisAddr := os.Getenv("REDIS_ADDRESS")
    if redisAddr == "" {
        redisAddr = "localhost:6379"
    }
    maxAge := 60
    if raw := os.Getenv("SESSION_MAX_AGE"); raw != "" {
        parsed, err := strconv.Atoi(raw)
        if err != nil {
            return nil, fmt.Errorf("SESSION_MAX_AGE must be an integer: %w", err)
        }
        maxAge = parsed
    }
    return &Config{
        ServerAddress:  addr,
        DatabaseURL:    dbURL,
        MigrationsPath: migrations,
        RedisAddress:   redisAddr,
        RedisUsername:  os.Getenv("REDIS_USERNAME"),
        RedisPassword:  os.Getenv("REDIS_PASSWORD"),
        SessionSecret:  secret,
        SessionMaxAge:  maxAge,
    }, nil
}
