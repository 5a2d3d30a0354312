package resolver

import (
	"github.com/jptrading/proxytrader/internal/types"
)

// kindPriority orders proxy kinds for classification. SPY with a quantity
// of 20 or more could have come from either an SPX or an ES substitution;
// the SPX reading wins because the two rules are indistinguishable from
// order data alone.
var kindPriority = map[types.InstrumentKind]int{
	types.InstrumentKindNQProxy:  0,
	types.InstrumentKindSPXProxy: 1,
	types.InstrumentKindESProxy:  2,
}

// ClassifyOrder infers which proxy rule, if any, a broker-side order was
// placed under. Only the surrogate symbol and the scaled quantity survive a
// round trip through the brokerage, so the inference is heuristic: a symbol
// targeted by a rule with at least the rule's multiplier as quantity is
// assumed to be a proxy order, and the inferred unit count is the quantity
// divided by the multiplier.
func (r *SymbolResolver) ClassifyOrder(symbol string, quantity int) (types.InstrumentKind, string, int) {
	var (
		best  ProxyRule
		found bool
	)

	for _, rule := range r.rules {
		if rule.TradableSymbol != symbol || quantity < rule.Multiplier {
			continue
		}

		if !found || kindPriority[rule.Kind] < kindPriority[best.Kind] {
			best = rule
			found = true
		}
	}

	if found {
		return best.Kind, best.Label, quantity / best.Multiplier
	}

	if r.verified[symbol] {
		return types.InstrumentKindDirect, "Direct", quantity
	}

	return types.InstrumentKindUnknown, "Unknown", 0
}
