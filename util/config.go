package util

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	ParseCacheTTL     time.Duration `mapstructure:"PARSE_CACHE_TTL"`
	// MaxInputBytes caps the size of the markup accepted by the HTTP service.
	MaxInputBytes int `mapstructure:"MAX_INPUT_BYTES"`
}

// defaults are registered so AutomaticEnv can override keys missing from app.env.
var defaults = map[string]any{
	"ENVIRONMENT":         "development",
	"DB_SOURCE":           "",
	"MIGRATION_URL":       "file://db/migration",
	"HTTP_SERVER_ADDRESS": "http://0.0.0.0:8080",
	"REDIS_ADDRESS":       "localhost:6379",
	"ALLOWED_ORIGINS":     "*",
	"PARSE_CACHE_TTL":     "10m",
	"MAX_INPUT_BYTES":     64 * 1024,
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The address may omit the scheme, e.g. "localhost:8080".
// If no port is specified in the URL, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress

	if u, parseErr := url.Parse(addr); parseErr == nil && u.Host != "" {
		host, port = u.Hostname(), u.Port()
	} else {
		host, port, err = net.SplitHostPort(addr)
		if err != nil {
			err = fmt.Errorf("error parsing http server address: %w", err)
			return
		}
	}

	if host == "" {
		err = fmt.Errorf("http server address %q has no host", addr)
	}

	return
}

// ListenAddress returns the "host:port" form of the HTTP server address for net/http.
func (config *Config) ListenAddress() (string, error) {
	host, port, err := config.ExtractHostPort()
	if err != nil {
		return "", err
	}

	if port == "" {
		port = "80"
	}

	return net.JoinHostPort(host, port), nil
}
