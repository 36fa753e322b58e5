package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExtractHostPort(t *testing.T) {
	type tc struct {
		name      string
		addr      string
		wantHost  string
		wantPort  string
		wantError bool
	}

	tests := []tc{
		{
			name:     "with_scheme_host_and_port",
			addr:     "http://localhost:8080",
			wantHost: "localhost",
			wantPort: "8080",
		},
		{
			name:     "with_scheme_only_host",
			addr:     "http://localhost",
			wantHost: "localhost",
			wantPort: "",
		},
		{
			name:     "ipv4_with_scheme",
			addr:     "http://0.0.0.0:8080",
			wantHost: "0.0.0.0",
			wantPort: "8080",
		},
		{
			name:     "domain_with_scheme",
			addr:     "http://example.com:443",
			wantHost: "example.com",
			wantPort: "443",
		},
		{
			name:     "ipv6_with_scheme_host_and_port",
			addr:     "http://[::1]:9090",
			wantHost: "::1",
			wantPort: "9090",
		},
		{
			name:     "ipv6_with_scheme_only_host",
			addr:     "http://[::1]",
			wantHost: "::1",
			wantPort: "",
		},
		{
			name:     "no_scheme_host_and_port",
			addr:     "localhost:8080",
			wantHost: "localhost",
			wantPort: "8080",
		},
		{
			name:     "no_scheme_ipv6",
			addr:     "[::1]:9090",
			wantHost: "::1",
			wantPort: "9090",
		},
		{
			name:      "invalid_url_missing_host",
			addr:      "http://:8080",
			wantError: true,
		},
		{
			name:      "garbage_string",
			addr:      "not a url",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{HTTPServerAddress: tt.addr}
			host, port, err := cfg.ExtractHostPort()

			if tt.wantError {
				require.Error(t, err, "expected error for addr=%q", tt.addr)
				return
			}

			require.NoError(t, err, "unexpected error for addr=%q", tt.addr)
			require.Equal(t, tt.wantHost, host, "wrong host for addr=%q", tt.addr)
			require.Equal(t, tt.wantPort, port, "wrong port for addr=%q", tt.addr)
		})
	}
}

func TestListenAddress(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"http://0.0.0.0:8080", "0.0.0.0:8080"},
		{"http://localhost", "localhost:80"},
		{"localhost:9000", "localhost:9000"},
		{"http://[::1]:9090", "[::1]:9090"},
	}

	for _, tt := range tests {
		cfg := Config{HTTPServerAddress: tt.addr}
		got, err := cfg.ListenAddress()
		require.NoError(t, err, "addr=%q", tt.addr)
		require.Equal(t, tt.want, got)
	}

	cfg := Config{HTTPServerAddress: "http://:8080"}
	_, err := cfg.ListenAddress()
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	env := "ENVIRONMENT=production\n" +
		"HTTP_SERVER_ADDRESS=http://127.0.0.1:9999\n" +
		"ALLOWED_ORIGINS=http://a.example,http://b.example\n" +
		"PARSE_CACHE_TTL=5m\n" +
		"MAX_INPUT_BYTES=1024\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o600))

	t.Setenv("REDIS_ADDRESS", "redis.internal:6380")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "http://127.0.0.1:9999", cfg.HTTPServerAddress)
	require.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	require.Equal(t, 5*time.Minute, cfg.ParseCacheTTL)
	require.Equal(t, 1024, cfg.MaxInputBytes)

	// environment overrides the file, defaults fill the rest
	require.Equal(t, "redis.internal:6380", cfg.RedisAddress)
	require.Equal(t, "file://db/migration", cfg.MigrationURL)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}
