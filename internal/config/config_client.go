package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

const clientEnvPrefix = "CLIENT_"

// ClientConfig is the configuration of the terminal client.
type ClientConfig struct {
	// ServerURL is the base URL of the notes API (e.g. "http://localhost:8080").
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionFile is where the bearer token is kept between runs.
	// Env: CLIENT_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// GetClientConfig builds and validates the client configuration from the
// environment, the command-line flags in args and the defaults, in that
// priority order.
func GetClientConfig(args []string) (*ClientConfig, error) {
	var envCfg ClientConfig
	if err := parseEnv(&envCfg, clientEnvPrefix); err != nil {
		return nil, err
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := new(ClientConfig)
	for _, source := range []*ClientConfig{&envCfg, flagCfg, defaultClientConfig()} {
		if err = mergo.Merge(cfg, source); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	var cfg ClientConfig
	fs.StringVar(&cfg.ServerURL, "s", "", "Server URL (e.g., http://localhost:8080)")
	fs.DurationVar(&cfg.RequestTimeout, "t", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.SessionFile, "session", "", "Session file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL:      DefaultClientServerURL,
		RequestTimeout: DefaultClientRequestTimeout,
		SessionFile:    defaultSessionFile(),
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		if dir, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, DefaultTokenIssuer, defaultClientSessionName)
}

// IsUsageRequest reports whether err was caused by -h or -help.
func IsUsageRequest(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
