package config

import (
	"fmt"

	"github.com/ADI-2707/Web-App/pkg/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      logger.Conf    `mapstructure:"log"`
	Security SecurityConfig `mapstructure:"security"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.Charset)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// SecurityConfig tunes the PIN/invite policies.
//
// StrictInvites turns the silent skip of unknown invite emails into a
// validation failure. RequireAdminInvite restores the older rule that at
// least one invited member must be an admin. Both default to off.
type SecurityConfig struct {
	PINLength          int  `mapstructure:"pin_length"`
	StrictInvites      bool `mapstructure:"strict_invites"`
	RequireAdminInvite bool `mapstructure:"require_admin_invite"`
	MaxPINAttempts     int  `mapstructure:"max_pin_attempts"`
	PINAttemptWindow   int  `mapstructure:"pin_attempt_window_minutes"`
}

func Load(path string) (*Config, error) {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Security.PINLength == 0 {
		cfg.Security.PINLength = 8
	}
	if cfg.Security.MaxPINAttempts == 0 {
		cfg.Security.MaxPINAttempts = 5
	}
	if cfg.Security.PINAttemptWindow == 0 {
		cfg.Security.PINAttemptWindow = 15
	}
	return &cfg, nil
}
