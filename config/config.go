package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	store "github.com/phillip/campus-clubs-go/store"
	utils "github.com/phillip/campus-clubs-go/utils"
)

// Config is the static configuration read from the environment (and an optional .env file).
type Config struct {
	Port        string `env:"PORT" envDefault:"3333"`
	GinMode     string `env:"GIN_MODE" envDefault:"release"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"mongo"` // mongo | memory

	MongoKeyFile        string `env:"MONGODB_KEY_FILE" envDefault:"key/service_account.json"`
	DBName              string `env:"MONGODB_DB_NAME"` // overrides the key file's database
	StoreTimeoutSeconds int    `env:"STORE_TIMEOUT" envDefault:"5"`
	ConnectRetrySeconds int    `env:"MONGODB_CONNECT_RETRY" envDefault:"60"`

	CoursesTermsURL       string `env:"COURSES_TERMS_URL"`
	CoursesCatalogURL     string `env:"COURSES_CATALOG_URL"` // one %s for the term
	CoursesTimeoutSeconds int    `env:"COURSES_TIMEOUT" envDefault:"10"`

	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // text | json
	LogFile   string `env:"LOG_FILE"`
}

// Credentials is the database key file.
type Credentials struct {
	ConnectionURI string `json:"connection_uri"`
	Database      string `json:"database"`
}

// Load reads .env (if present) then parses the environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.StoreDriver != "mongo" && cfg.StoreDriver != "memory" {
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	// backoff treats a zero MaxElapsedTime as unbounded.
	if cfg.ConnectRetrySeconds <= 0 {
		return nil, fmt.Errorf("MONGODB_CONNECT_RETRY must be positive, got %d", cfg.ConnectRetrySeconds)
	}
	return &cfg, nil
}

func (c *Config) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutSeconds) * time.Second
}

func (c *Config) CoursesTimeout() time.Duration {
	return time.Duration(c.CoursesTimeoutSeconds) * time.Second
}

func (c *Config) ConnectRetry() time.Duration {
	return time.Duration(c.ConnectRetrySeconds) * time.Second
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// LoadCredentials reads the database key file. A missing or incomplete file is an error.
func LoadCredentials(path string) (*Credentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("invalid key file %s: %w", path, err)
	}
	if creds.ConnectionURI == "" {
		return nil, fmt.Errorf("invalid key file %s: connection_uri is empty", path)
	}
	if creds.Database == "" {
		creds.Database = "campus"
	}
	return &creds, nil
}

// App carries the constructed dependencies handed to the router.
type App struct {
	Config  *Config
	Store   store.Store
	Courses *utils.CourseClient
	Log     logrus.FieldLogger
}
