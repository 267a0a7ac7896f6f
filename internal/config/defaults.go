package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultHTTPAddress        = ":5000"
	DefaultTokenIssuer        = "flight-guardian"
	DefaultTokenDuration      = 360 * time.Minute
	DefaultResetTokenTTL      = time.Hour
	DefaultBcryptCost         = 10
	DefaultRequestTimeout     = 30 * time.Second
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultMaxOpenConns       = 10
	DefaultMaxIdleConns       = 4
	DefaultSMTPPort           = 465
	DefaultMailTimeout        = 15 * time.Second
	DefaultTokenSweepSchedule = "@every 15m"
	DefaultLogLevel           = "debug"
)

// DefaultCORSAllowedOrigins are the admin frontend origins allowed when no
// list is configured.
var DefaultCORSAllowedOrigins = []string{"http://localhost:4200", "https://oversight-system.vercel.app"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			ResetTokenTTL: DefaultResetTokenTTL,
			BcryptCost:    DefaultBcryptCost,
			LogLevel:      DefaultLogLevel,

			CORSAllowedOrigins: append([]string(nil), DefaultCORSAllowedOrigins...),
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: DefaultMaxOpenConns,
				MaxIdleConns: DefaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Mail: Mail{
			Transport: MailTransportLog,
			SMTPPort:  DefaultSMTPPort,
			Timeout:   DefaultMailTimeout,
		},
		Workers: Workers{
			TokenSweepSchedule: DefaultTokenSweepSchedule,
		},
	}
}
