package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the dashboard configuration.
type Config struct {
	App     AppConfig     `envPrefix:"APP_"`
	API     APIConfig     `envPrefix:"API_"`
	Storage StorageConfig `envPrefix:"STORAGE_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	MySQL   MySQLConfig   `envPrefix:"MYSQL_"`
	Log     LogConfig     `envPrefix:"LOG_"`
}

// AppConfig holds the dashboard selections and their defaults.
type AppConfig struct {
	Name             string   `env:"NAME" envDefault:"go-crypto-dashboard"`
	SupportedSymbols []string `env:"SUPPORTED_SYMBOLS" envSeparator:","`
	SymbolsFile      string   `env:"SYMBOLS_FILE"`
	DefaultSymbol    string   `env:"DEFAULT_SYMBOL" envDefault:"BTCUSDT"`
	Intervals        []string `env:"INTERVALS" envSeparator:"," envDefault:"1m,5m,15m,1h,4h,1d"`
	DefaultInterval  string   `env:"DEFAULT_INTERVAL" envDefault:"1m"`
	Assets           []string `env:"ASSETS" envSeparator:"," envDefault:"BTC,ETH,SOL,BNB,DOGE,XRP,USDT"`
	DefaultFrom      string   `env:"DEFAULT_FROM" envDefault:"BTC"`
	DefaultTo        string   `env:"DEFAULT_TO" envDefault:"USDT"`
	Timezone         string   `env:"TIMEZONE" envDefault:"Local"`
}

// APIConfig points at the dashboard backend serving both HTTP and the push channel.
type APIConfig struct {
	BaseURL        string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"20s"`
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY" envDefault:"3s"`
	KlineLimit     int64         `env:"KLINE_LIMIT" envDefault:"120"`
}

type StorageConfig struct {
	Driver string `env:"DRIVER" envDefault:"file"`
	Path   string `env:"PATH"`
}

type RedisConfig struct {
	DSN      string `env:"DSN" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Prefix   string `env:"PREFIX" envDefault:"dashboard:"`
}

type MySQLConfig struct {
	DSN string `env:"DSN"`
}

type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
	Path  string `env:"PATH" envDefault:"dashboard.log"`
}

const (
	StorageDriverFile  = "file"
	StorageDriverRedis = "redis"
	StorageDriverMySQL = "mysql"
)

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" || c.App.Timezone == "Local" {
		return time.Local, nil
	}

	return time.LoadLocation(c.App.Timezone)
}
