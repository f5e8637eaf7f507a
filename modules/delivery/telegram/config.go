package telegram

import (
	"fmt"
	"net/url"
	"regexp"
)

// tokenPattern matches the Telegram bot token format: <digits>:<alphanum+dash>.
var tokenPattern = regexp.MustCompile(`^\d+:[A-Za-z0-9_-]+$`)

// Config holds the Telegram delivery configuration.
type Config struct {
	// Token is the bot token issued by BotFather.
	Token string `yaml:"token"`

	// HealthCheckInterval is the minimum number of seconds between two
	// getMe probes. Calls to CheckHealth inside the interval return the
	// cached state without network activity.
	HealthCheckInterval int `yaml:"health_check_interval"`

	// APIURL overrides the Bot API base URL, mainly for tests.
	APIURL string `yaml:"api_url"`
}

// defaults applies default values to unset fields.
func (c *Config) defaults() {
	if c.HealthCheckInterval == 0 {
		c.HealthCheckInterval = 60
	}
	if c.APIURL == "" {
		c.APIURL = "https://api.telegram.org"
	}
}

// validate checks configuration field constraints beyond basic presence checks.
// It is called from Telegram.Validate after defaults have been applied.
func (c *Config) validate() error {
	if c.Token != "" && !tokenPattern.MatchString(c.Token) {
		return fmt.Errorf("telegram: token format invalid (expected <bot_id>:<hash>)")
	}

	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("telegram: api_url must be a valid http/https URL, got %q", c.APIURL)
		}
	}

	if c.HealthCheckInterval < 1 {
		return fmt.Errorf("telegram: health_check_interval must be at least 1 second, got %d", c.HealthCheckInterval)
	}

	return nil
}
