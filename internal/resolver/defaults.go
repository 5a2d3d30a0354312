package resolver

import (
	"github.com/jptrading/proxytrader/internal/types"
)

// Default multipliers for index-to-ETF substitution. These encode an
// approximate notional-exposure equivalence and are deliberately not
// user-configurable at runtime.
const (
	// NQMultiplier scales NQ contract counts into QQQ shares.
	NQMultiplier = 10
	// SPXMultiplier scales SPX/ES contract counts into SPY shares.
	SPXMultiplier = 20
)

// Default proxy targets verified to work in the Tradier sandbox.
const (
	NasdaqProxySymbol = "QQQ"
	SP500ProxySymbol  = "SPY"
)

// DefaultVerifiedSymbols returns the large-cap equities and ETFs confirmed
// orderable in the Tradier sandbox without substitution.
func DefaultVerifiedSymbols() []string {
	return []string{"SPY", "QQQ", "AAPL", "MSFT", "TSLA", "NVDA", "GOOGL", "AMZN", "META"}
}

// DefaultProxyRules returns the alias table for index and futures symbols the
// sandbox rejects, including common contract-month variants.
//
// ES reuses the SPX target and multiplier with a different label only; whether
// ES should carry its own exposure is an open product question, so the
// original behavior is preserved.
func DefaultProxyRules() map[string]ProxyRule {
	nq := ProxyRule{
		TradableSymbol: NasdaqProxySymbol,
		Multiplier:     NQMultiplier,
		Kind:           types.InstrumentKindNQProxy,
		Label:          "NQ Proxy",
	}
	spx := ProxyRule{
		TradableSymbol: SP500ProxySymbol,
		Multiplier:     SPXMultiplier,
		Kind:           types.InstrumentKindSPXProxy,
		Label:          "SPX Proxy",
	}
	es := ProxyRule{
		TradableSymbol: SP500ProxySymbol,
		Multiplier:     SPXMultiplier,
		Kind:           types.InstrumentKindESProxy,
		Label:          "ES Proxy",
	}

	rules := make(map[string]ProxyRule)

	for _, alias := range []string{"NQ", "/NQ", "NQH25", "NQM25", "NQU25", "NQZ25"} {
		rules[alias] = nq
	}

	for _, alias := range []string{"SPX", "SPXW"} {
		rules[alias] = spx
	}

	for _, alias := range []string{"ES", "/ES", "ESH25", "ESM25", "ESU25", "ESZ25"} {
		rules[alias] = es
	}

	return rules
}
