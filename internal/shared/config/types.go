package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// CitsmartConfig holds the service-account credentials and endpoint of the
// upstream CITSMART/4biz backend. Username and password have no defaults;
// missing values surface as a configuration error on first use.
type CitsmartConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	ClientID       string `mapstructure:"client_id"`
	Language       string `mapstructure:"language"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	ActionUser     string `mapstructure:"action_user"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (c *CitsmartConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Actor returns the identity recorded on upstream writes.
func (c *CitsmartConfig) Actor() string {
	if c.ActionUser != "" {
		return c.ActionUser
	}
	if c.Username != "" {
		return c.Username
	}
	return "painel_suspensos"
}
