package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the service reads from the environment. All secrets
// flow in here; nothing below this layer touches os.Getenv.
type Config struct {
	Env       string `env:"ADMIN_ENV" envDefault:"dev"`
	LogLevel  string `env:"ADMIN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ADMIN_LOG_FORMAT" envDefault:"json"`

	Port         int    `env:"ADMIN_PORT" envDefault:"8080"`
	BaseURL      string `env:"ADMIN_BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseFile string `env:"ADMIN_DB_FILE" envDefault:"admin.db"`

	// SessionSecret signs session tokens. Required outside dev; in dev an
	// ephemeral secret is generated, invalidating sessions on restart.
	SessionSecret string        `env:"ADMIN_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"12h"`
	Issuer        string        `env:"ADMIN_ISSUER" envDefault:"dialisis-admin"`

	// BootstrapToken gates first-run superadmin creation. Empty disables the
	// bootstrap endpoint.
	BootstrapToken string `env:"ADMIN_BOOTSTRAP_TOKEN"`

	HousekeepingInterval time.Duration `env:"ADMIN_HOUSEKEEPING_INTERVAL" envDefault:"1h"`
	ShutdownGracePeriod  time.Duration `env:"ADMIN_SHUTDOWN_GRACE" envDefault:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
