package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverSupabase = "supabase"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"5000"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Storage struct {
		// Driver selects the persistence backend: sqlite, postgres or supabase.
		Driver      string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
		SQLitePath  string `env:"SQLITE_PATH" envDefault:"memesboost.sqlite"`
		PostgresDSN string `env:"POSTGRES_DSN"`
		SupabaseURL string `env:"SUPABASE_URL"`
		SupabaseKey string `env:"SUPABASE_KEY"`
	}

	Redis struct {
		Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
		Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string        `env:"REDIS_PASSWORD" envDefault:""`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"1m"`
	}

	Boost struct {
		// Cooldown is the rolling window between boosts for a single user.
		Cooldown time.Duration `env:"BOOST_COOLDOWN" envDefault:"24h"`
	}

	// UserCap is the hard ceiling on registered users.
	UserCap int `env:"USER_CAP" envDefault:"222"`

	// AdminToken guards the administrative endpoints. Empty disables them.
	AdminToken string `env:"ADMIN_TOKEN"`

	Dexscreener struct {
		BaseURL string        `env:"DEXSCREENER_URL" envDefault:"https://api.dexscreener.com"`
		Timeout time.Duration `env:"DEXSCREENER_TIMEOUT" envDefault:"10s"`
	}
}

func MustLoad() *Config {
	// Missing .env is fine; in production the variables are set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
