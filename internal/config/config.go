package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDev  = "dev"
	EnvTest = "test"
	EnvProd = "prod"

	defaultPort = "8080"
	defaultDSN  = "host=localhost user=postgres password=postgres dbname=nc_news port=5432 sslmode=disable"
)

type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	LogLevel    string
	GinMode     string
	CORSOrigins []string
}

// LoadDotEnvs loads the dotenv files for the current NCNEWS_ENV from dir.
// godotenv never overrides a variable that is already set, so the first file to
// define a key wins: .env.<env>.local, .env.local, .env.<env>, .env.
// Missing files are skipped.
func LoadDotEnvs(dir string) {
	env := os.Getenv("NCNEWS_ENV")
	if env == "" {
		env = EnvDev
	}

	for _, name := range []string{".env." + env + ".local", ".env.local", ".env." + env, ".env"} {
		_ = godotenv.Load(filepath.Join(dir, name))
	}
}

// Load reads configuration from the process environment, applying defaults.
func Load() *Config {
	cfg := &Config{
		Env:         getenv("NCNEWS_ENV", EnvDev),
		Port:        getenv("PORT", defaultPort),
		DatabaseURL: getenv("DATABASE_URL", defaultDSN),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		GinMode:     os.Getenv("GIN_MODE"),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if cfg.GinMode == "" {
		cfg.GinMode = "debug"
		if cfg.Env == EnvProd {
			cfg.GinMode = "release"
		}
	}

	return cfg
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
