package resolver

import (
	"testing"

	"github.com/jptrading/proxytrader/internal/types"
	"github.com/jptrading/proxytrader/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ResolverTestSuite struct {
	suite.Suite
	resolver *SymbolResolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (suite *ResolverTestSuite) SetupTest() {
	resolver, err := NewDefaultSymbolResolver()
	suite.Require().NoError(err)
	suite.resolver = resolver
}

func (suite *ResolverTestSuite) TestNQFamilyResolvesToQQQ() {
	for _, symbol := range []string{"NQ", "/NQ", "NQH25", "NQM25", "NQU25", "NQZ25"} {
		resolved, err := suite.resolver.Resolve(symbol)
		suite.NoError(err, symbol)
		suite.Equal("QQQ", resolved.TradableSymbol, symbol)
		suite.Equal(10, resolved.Multiplier, symbol)
		suite.Equal(types.InstrumentKindNQProxy, resolved.Kind, symbol)
		suite.Equal("QQQ (NQ Proxy x10)", resolved.DisplayLabel, symbol)
	}
}

func (suite *ResolverTestSuite) TestSPXFamilyResolvesToSPY() {
	for _, symbol := range []string{"SPX", "SPXW"} {
		resolved, err := suite.resolver.Resolve(symbol)
		suite.NoError(err, symbol)
		suite.Equal("SPY", resolved.TradableSymbol, symbol)
		suite.Equal(20, resolved.Multiplier, symbol)
		suite.Equal(types.InstrumentKindSPXProxy, resolved.Kind, symbol)
	}
}

func (suite *ResolverTestSuite) TestESFamilySharesSPXTargetWithOwnLabel() {
	for _, symbol := range []string{"ES", "/ES", "ESH25", "ESM25", "ESU25", "ESZ25"} {
		resolved, err := suite.resolver.Resolve(symbol)
		suite.NoError(err, symbol)
		suite.Equal("SPY", resolved.TradableSymbol, symbol)
		suite.Equal(20, resolved.Multiplier, symbol)
		suite.Equal(types.InstrumentKindESProxy, resolved.Kind, symbol)
		suite.Equal("SPY (ES Proxy x20)", resolved.DisplayLabel, symbol)
	}
}

func (suite *ResolverTestSuite) TestVerifiedSymbolResolvesDirect() {
	for _, symbol := range DefaultVerifiedSymbols() {
		resolved, err := suite.resolver.Resolve(symbol)
		suite.NoError(err, symbol)
		suite.Equal(symbol, resolved.TradableSymbol)
		suite.Equal(1, resolved.Multiplier)
		suite.Equal(types.InstrumentKindDirect, resolved.Kind)
		suite.False(resolved.IsProxy())
	}
}

func (suite *ResolverTestSuite) TestLowercaseInputIsNormalized() {
	resolved, err := suite.resolver.Resolve("aapl")
	suite.NoError(err)
	suite.Equal("AAPL", resolved.RequestedSymbol)
	suite.Equal("AAPL", resolved.TradableSymbol)
}

func (suite *ResolverTestSuite) TestUnsupportedSymbolFails() {
	_, err := suite.resolver.Resolve("NKD")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnsupportedSymbol))
	suite.True(errors.IsUnsupportedSymbolError(err))

	var unsupportedErr *errors.UnsupportedSymbolError
	suite.True(errors.As(err, &unsupportedErr))
	suite.Equal("NKD", unsupportedErr.Symbol)
	suite.Equal(DefaultVerifiedSymbols(), unsupportedErr.Verified)
}

func (suite *ResolverTestSuite) TestResolveIsIdempotent() {
	first, err := suite.resolver.Resolve("NQ")
	suite.NoError(err)

	second, err := suite.resolver.Resolve("NQ")
	suite.NoError(err)
	suite.Equal(first, second)
}

func (suite *ResolverTestSuite) TestSubstituteTables() {
	resolver, err := NewSymbolResolver(map[string]ProxyRule{
		"RTY": {
			TradableSymbol: "IWM",
			Multiplier:     5,
			Kind:           types.InstrumentKindNQProxy,
			Label:          "RTY Proxy",
		},
	}, []string{"IWM"})
	suite.Require().NoError(err)

	resolved, err := resolver.Resolve("rty")
	suite.NoError(err)
	suite.Equal("IWM", resolved.TradableSymbol)
	suite.Equal(5, resolved.Multiplier)

	_, err = resolver.Resolve("SPY")
	suite.Error(err)
}

func (suite *ResolverTestSuite) TestRejectsRuleOutsideVerifiedSet() {
	_, err := NewSymbolResolver(map[string]ProxyRule{
		"NQ": {
			TradableSymbol: "QQQ",
			Multiplier:     10,
			Kind:           types.InstrumentKindNQProxy,
			Label:          "NQ Proxy",
		},
	}, []string{"SPY"})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ResolverTestSuite) TestRejectsZeroMultiplier() {
	_, err := NewSymbolResolver(map[string]ProxyRule{
		"NQ": {
			TradableSymbol: "QQQ",
			Multiplier:     0,
			Kind:           types.InstrumentKindNQProxy,
			Label:          "NQ Proxy",
		},
	}, []string{"QQQ"})
	suite.Error(err)
}

func (suite *ResolverTestSuite) TestRejectsEmptyVerifiedSet() {
	_, err := NewSymbolResolver(nil, nil)
	suite.Error(err)
}

func (suite *ResolverTestSuite) TestVerifiedSymbolsReturnsCopy() {
	symbols := suite.resolver.VerifiedSymbols()
	symbols[0] = "MUTATED"

	fresh := suite.resolver.VerifiedSymbols()
	suite.Equal("SPY", fresh[0])
}

func (suite *ResolverTestSuite) TestClassifyOrder() {
	tests := []struct {
		name     string
		symbol   string
		quantity int
		kind     types.InstrumentKind
		label    string
		units    int
	}{
		{"qqq at multiplier is one nq unit", "QQQ", 10, types.InstrumentKindNQProxy, "NQ Proxy", 1},
		{"qqq above multiplier rounds down", "QQQ", 25, types.InstrumentKindNQProxy, "NQ Proxy", 2},
		{"spy at multiplier is one spx unit", "SPY", 20, types.InstrumentKindSPXProxy, "SPX Proxy", 1},
		{"spy at twice multiplier", "SPY", 40, types.InstrumentKindSPXProxy, "SPX Proxy", 2},
		{"qqq below multiplier is direct", "QQQ", 5, types.InstrumentKindDirect, "Direct", 5},
		{"spy below multiplier is direct", "SPY", 19, types.InstrumentKindDirect, "Direct", 19},
		{"verified stock is direct", "AAPL", 100, types.InstrumentKindDirect, "Direct", 100},
		{"unverified symbol is unknown", "XYZ", 7, types.InstrumentKindUnknown, "Unknown", 0},
	}

	for _, test := range tests {
		kind, label, units := suite.resolver.ClassifyOrder(test.symbol, test.quantity)
		suite.Equal(test.kind, kind, test.name)
		suite.Equal(test.label, label, test.name)
		suite.Equal(test.units, units, test.name)
	}
}
