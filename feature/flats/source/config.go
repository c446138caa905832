package source

import "time"

// Config holds the listing API settings.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string `mapstructure:"base_url" default:"https://api.pik.ru"`
	// BlockID identifies the residential complex.
	BlockID int64 `mapstructure:"block_id" default:"1220"`
	// TimeoutSeconds bounds one fetch, including reading the body.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"PikYauzaBot/1.0"`
}

// Timeout returns the fetch timeout, falling back to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
