package configs

import (
	"strings"
	"time"

	"satim-gateway/domain/constants"
	"satim-gateway/domain/request_params"
	"satim-gateway/errors"

	"github.com/spf13/viper"
)

const defaultTimeoutSeconds = 30

type Config struct {
	ENV         string      `json:"env" mapstructure:"env"`
	MaxPoolSize int         `json:"max_pool_size" mapstructure:"max_pool_size"`
	Satim       SatimConfig `json:"satim" mapstructure:"satim"`
}

type SatimConfig struct {
	Username        string `json:"username" mapstructure:"username"`
	Password        string `json:"password" mapstructure:"password"`
	TerminalID      string `json:"terminal_id" mapstructure:"terminal_id"`
	ApiBaseURL      string `json:"api_base_url" mapstructure:"api_base_url"`
	TimeoutSeconds  int    `json:"timeout_seconds" mapstructure:"timeout_seconds"`
	DefaultCurrency string `json:"default_currency" mapstructure:"default_currency"`
	DefaultLanguage string `json:"default_language" mapstructure:"default_language"`
}

// Credentials fails lazily so a missing password only surfaces on the first call.
func (c SatimConfig) Credentials() (request_params.Credentials, error) {
	if c.Username == "" || c.Password == "" {
		return request_params.Credentials{}, errors.ErrCredentialsNotConfigured
	}
	return request_params.Credentials{
		UserName:   c.Username,
		Password:   c.Password,
		TerminalID: c.TerminalID,
	}, nil
}

func (c SatimConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c SatimConfig) Currency() constants.Currency {
	return constants.ResolveCurrency(c.DefaultCurrency)
}

func (c SatimConfig) Language() constants.Language {
	return constants.ResolveLanguage(c.DefaultLanguage)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix("SATIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("max_pool_size", 10)
	v.SetDefault("satim.username", "")
	v.SetDefault("satim.password", "")
	v.SetDefault("satim.terminal_id", "")
	v.SetDefault("satim.api_base_url", "")
	v.SetDefault("satim.timeout_seconds", defaultTimeoutSeconds)
	v.SetDefault("satim.default_currency", constants.CurrencyFallback().Name())
	v.SetDefault("satim.default_language", string(constants.LanguageFallback()))
	return v
}

func load(v *viper.Viper) (*Config, error) {
	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = v.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func LoadConfig() (*Config, error) {
	v := newViper()
	v.AddConfigPath("./")
	v.SetConfigName("config")
	return load(v)
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	v := newViper()
	v.AddConfigPath(configPath)
	v.SetConfigName("config_test")
	return load(v)
}
