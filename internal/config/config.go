package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "3000"

	// DefaultSessionTTL is the fixed lifetime of a session.
	DefaultSessionTTL = 24 * time.Hour

	// DefaultSweepInterval is how often expired sessions are purged.
	DefaultSweepInterval = 5 * time.Minute

	// DefaultBcryptCost is the bcrypt work factor for seeded passwords.
	DefaultBcryptCost = 10

	// DefaultSeedFile is empty; the embedded seed is used.
	DefaultSeedFile = ""
)

// Config is the resolved server configuration.
type Config struct {
	Port          string
	SessionTTL    time.Duration
	SweepInterval time.Duration
	BcryptCost    int
	SecureCookies bool
	SeedFile      string
	StaticDir     string
}

// Default returns a Config populated with the defaults above.
func Default() Config {
	return Config{
		Port:          DefaultPort,
		SessionTTL:    DefaultSessionTTL,
		SweepInterval: DefaultSweepInterval,
		BcryptCost:    DefaultBcryptCost,
		SeedFile:      DefaultSeedFile,
	}
}
