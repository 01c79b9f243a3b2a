package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"myflix/proj/internal/storage"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug   bool    `yaml:"debug" env:"DEBUG"`
	Limiter Limiter `yaml:"limiter"`
	Server  Server  `yaml:"server"`
	Storage Storage `yaml:"storage"`
	Auth    Auth    `yaml:"auth"`
	HTTP    HTTP    `yaml:"http"`
	CORS    CORS    `yaml:"cors"`
	SMTP    SMTP    `yaml:"smtp"`
	Tasks   Tasks   `yaml:"tasks"`
}

type Limiter struct {
	Enabled bool    `yaml:"enabled" env:"LIMITER_ENABLED"`
	Rps     float64 `yaml:"rps" env-default:"20"`
	Burst   int     `yaml:"burst" env-default:"5"`
}

type Server struct {
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
	Host string `yaml:"host" env:"HOST" env-default:"0.0.0.0"`

	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type Storage struct {
	Driver          string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	Dsn             string        `yaml:"dsn" env:"CONNECTION_URI"`
	Database        string        `yaml:"database" env:"DB_NAME" env-default:"myFlixDB"`
	MaxConns        int           `yaml:"max_conns" env-default:"25"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"10m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env-default:"5s"`
	SkipMigrations  bool          `yaml:"skip_migrations" env:"DB_SKIP_MIGRATIONS"`
}

type Auth struct {
	Secret     string        `yaml:"secret" env:"APP_SECRET" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl" env-default:"168h"`
	BcryptCost int           `yaml:"bcrypt_cost" env-default:"10"`
	// Routes whose protection differed between releases of the API. Both
	// default to the restrictive reading.
	PublicRoot        bool `yaml:"public_root" env:"AUTH_PUBLIC_ROOT"`
	PublicFavoriteAdd bool `yaml:"public_favorite_add" env:"AUTH_PUBLIC_FAVORITE_ADD"`
}

type HTTP struct {
	NotFoundStatus int `yaml:"not_found_status" env-default:"400"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

type SMTP struct {
	Host         string        `yaml:"host" env:"SMTP_HOST"`
	Port         int           `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username     string        `yaml:"username" env:"SMTP_USERNAME"`
	Password     string        `yaml:"password" env:"SMTP_PASSWORD"`
	Sender       string        `yaml:"sender" env:"SMTP_SENDER" env-default:"myFlix <no-reply@myflix.local>"`
	Timeout      time.Duration `yaml:"timeout" env-default:"5s"`
	RetriesCount int           `yaml:"retries_count" env-default:"3"`
}

func (s SMTP) Enabled() bool {
	return s.Host != ""
}

type Tasks struct {
	Workers   int `yaml:"workers" env-default:"3"`
	QueueSize int `yaml:"queue_size" env-default:"100"`
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case storage.DriverMemory:
	case storage.DriverPostgres, storage.DriverMongo:
		if c.Storage.Dsn == "" {
			return fmt.Errorf("storage.dsn is required for the %s driver", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.HTTP.NotFoundStatus != 400 && c.HTTP.NotFoundStatus != 404 {
		return fmt.Errorf("http.not_found_status must be 400 or 404, got %d", c.HTTP.NotFoundStatus)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	return nil
}

// Load reads configPath (when it exists) and then the environment. A .env
// file in the working directory is loaded first.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	return cfg
}
