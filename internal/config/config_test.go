package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jptrading/proxytrader/internal/types"
	"github.com/jptrading/proxytrader/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *ConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(suite.dir, "config.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	return path
}

func (suite *ConfigTestSuite) TestLoadExpandsEnvironment() {
	suite.T().Setenv("TEST_TRADIER_TOKEN", "secret-token")
	suite.T().Setenv("TEST_TRADIER_ACCOUNT", "VA123")

	path := suite.writeConfig(`
server:
  addr: ":9090"
broker:
  base_url: "https://sandbox.tradier.com"
  token: "${TEST_TRADIER_TOKEN}"
  account_id: "${TEST_TRADIER_ACCOUNT}"
`)

	config, err := Load(path)
	suite.Require().NoError(err)

	suite.Equal(":9090", config.Server.Addr)
	suite.Equal("secret-token", config.Broker.Token)
	suite.Equal("VA123", config.Broker.AccountID)
	suite.Equal("SPY", config.Webhook.DefaultSymbol)
	suite.Equal(types.TradeActionBuy, config.Webhook.DefaultAction)
	suite.Equal(1, config.Webhook.DefaultQuantity)
}

func (suite *ConfigTestSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(suite.dir, "absent.yaml"))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestLoadRejectsMissingToken() {
	path := suite.writeConfig(`
broker:
  base_url: "https://sandbox.tradier.com"
  account_id: "VA123"
  token: ""
`)

	_, err := Load(path)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestLoadRejectsBadAction() {
	path := suite.writeConfig(`
broker:
  base_url: "https://sandbox.tradier.com"
  token: "t"
  account_id: "a"
webhook:
  default_symbol: "SPY"
  default_action: "hold"
  default_quantity: 1
`)

	_, err := Load(path)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestBuildResolverDefaults() {
	config := DefaultConfig()

	symbolResolver, err := config.BuildResolver()
	suite.Require().NoError(err)

	resolved, err := symbolResolver.Resolve("NQ")
	suite.NoError(err)
	suite.Equal("QQQ", resolved.TradableSymbol)
	suite.Equal(10, resolved.Multiplier)
}

func (suite *ConfigTestSuite) TestBuildResolverOverrides() {
	config := DefaultConfig()
	config.Resolver.VerifiedSymbols = []string{"IWM"}
	config.Resolver.ProxyRules = map[string]ProxyRuleConfig{
		"RTY": {
			TradableSymbol: "IWM",
			Multiplier:     5,
			Kind:           string(types.InstrumentKindNQProxy),
			Label:          "RTY Proxy",
		},
	}

	symbolResolver, err := config.BuildResolver()
	suite.Require().NoError(err)

	resolved, err := symbolResolver.Resolve("RTY")
	suite.NoError(err)
	suite.Equal("IWM", resolved.TradableSymbol)
	suite.Equal(5, resolved.Multiplier)

	_, err = symbolResolver.Resolve("NQ")
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestBrokerConfigConversion() {
	config := DefaultConfig()
	config.Broker.Token = "t"
	config.Broker.AccountID = "a"

	brokerConfig := config.BrokerConfig()
	suite.Equal("https://sandbox.tradier.com", brokerConfig.BaseURL)
	suite.Equal("t", brokerConfig.Token)
	suite.Equal("a", brokerConfig.AccountID)
}
