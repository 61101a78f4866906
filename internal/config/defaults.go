package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultTokenIssuer    = "go-note-keeper"
	DefaultTokenDuration  = 7 * 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultAuthRateLimit  = 5
	DefaultAuthRateBurst  = 10
	DefaultAppVersion     = "dev"

	DefaultClientServerURL      = "http://localhost:8080"
	DefaultClientRequestTimeout = 10 * time.Second
	defaultClientSessionName    = "session"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BCryptCost:    bcrypt.DefaultCost,
			Version:       DefaultAppVersion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AuthRateLimit:  DefaultAuthRateLimit,
			AuthRateBurst:  DefaultAuthRateBurst,
		},
	}
}
