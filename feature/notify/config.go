package notify

// Config holds the Telegram bot settings.
type Config struct {
	// Token is the bot token. Empty disables notifications.
	Token string `mapstructure:"token" default:""`
	// ChatID is the chat that receives scheduled reports.
	ChatID string `mapstructure:"chat_id" default:""`
	// BaseURL is the Bot API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.telegram.org"`
	// MaxMessageLength is the per-message limit in characters.
	MaxMessageLength int `mapstructure:"max_message_length" default:"4096"`
	// TimeoutSeconds bounds one sendMessage call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Enabled reports whether a bot token and a chat are configured.
func (c Config) Enabled() bool {
	return c.Token != "" && c.ChatID != ""
}
