// Package config loads and validates the service configuration from YAML,
// with environment variable expansion for credentials.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jptrading/proxytrader/internal/broker"
	"github.com/jptrading/proxytrader/internal/resolver"
	"github.com/jptrading/proxytrader/internal/types"
	"github.com/jptrading/proxytrader/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the webhook service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Broker   BrokerConfig   `yaml:"broker"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Resolver ResolverConfig `yaml:"resolver"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

// BrokerConfig configures the Tradier sandbox connection. Token and account
// id are usually supplied through ${TRADIER_TOKEN} and ${TRADIER_ACCOUNT_ID}
// expansion rather than written into the file.
type BrokerConfig struct {
	BaseURL   string `yaml:"base_url" validate:"required,url"`
	Token     string `yaml:"token" validate:"required"`
	AccountID string `yaml:"account_id" validate:"required"`
}

// WebhookConfig holds the defaults applied to fields missing from an
// incoming alert payload.
type WebhookConfig struct {
	DefaultSymbol   string            `yaml:"default_symbol" validate:"required"`
	DefaultAction   types.TradeAction `yaml:"default_action" validate:"required,oneof=buy sell"`
	DefaultQuantity int               `yaml:"default_quantity" validate:"required,min=1"`
}

// ResolverConfig overrides the built-in symbol tables. Empty fields keep
// the defaults.
type ResolverConfig struct {
	VerifiedSymbols []string                   `yaml:"verified_symbols"`
	ProxyRules      map[string]ProxyRuleConfig `yaml:"proxy_rules"`
}

// ProxyRuleConfig is the YAML form of a proxy substitution rule.
type ProxyRuleConfig struct {
	TradableSymbol string `yaml:"tradable_symbol" validate:"required"`
	Multiplier     int    `yaml:"multiplier" validate:"required,min=1"`
	Kind           string `yaml:"kind" validate:"required"`
	Label          string `yaml:"label" validate:"required"`
}

// DefaultConfig returns the configuration used when no file is given. The
// broker token and account id are read from the environment.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Broker: BrokerConfig{
			BaseURL:   broker.DefaultBaseURL,
			Token:     os.Getenv("TRADIER_TOKEN"),
			AccountID: os.Getenv("TRADIER_ACCOUNT_ID"),
		},
		Webhook: WebhookConfig{
			DefaultSymbol:   resolver.SP500ProxySymbol,
			DefaultAction:   types.TradeActionBuy,
			DefaultQuantity: 1,
		},
	}
}

// Load reads a YAML configuration file, expands ${VAR} references from the
// environment, and validates the result. Missing fields fall back to the
// defaults.
func Load(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to read config file", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config file", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate validates the Config struct.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid configuration", err)
	}

	return nil
}

// BuildResolver constructs the symbol resolver described by the
// configuration, falling back to the built-in tables when no overrides are
// present.
func (c *Config) BuildResolver() (*resolver.SymbolResolver, error) {
	if len(c.Resolver.VerifiedSymbols) == 0 && len(c.Resolver.ProxyRules) == 0 {
		return resolver.NewDefaultSymbolResolver()
	}

	verified := c.Resolver.VerifiedSymbols
	if len(verified) == 0 {
		verified = resolver.DefaultVerifiedSymbols()
	}

	rules := make(map[string]resolver.ProxyRule, len(c.Resolver.ProxyRules))
	for alias, rule := range c.Resolver.ProxyRules {
		rules[alias] = resolver.ProxyRule{
			TradableSymbol: rule.TradableSymbol,
			Multiplier:     rule.Multiplier,
			Kind:           types.InstrumentKind(rule.Kind),
			Label:          rule.Label,
		}
	}

	if len(rules) == 0 {
		rules = resolver.DefaultProxyRules()
	}

	return resolver.NewSymbolResolver(rules, verified)
}

// BrokerConfig converts the broker section into the client configuration.
func (c *Config) BrokerConfig() broker.Config {
	return broker.Config{
		BaseURL:   c.Broker.BaseURL,
		Token:     c.Broker.Token,
		AccountID: c.Broker.AccountID,
	}
}
