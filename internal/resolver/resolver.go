// Package resolver decides what to actually trade for a requested symbol.
// Index and futures symbols the sandbox cannot execute are mapped to verified
// ETF proxies with a fixed quantity multiplier; everything else must be a
// member of the verified-tradable set.
package resolver

import (
	"fmt"
	"strings"

	"github.com/jptrading/proxytrader/internal/types"
	"github.com/jptrading/proxytrader/pkg/errors"
)

// ProxyRule maps one instrument alias to the surrogate equity that stands in
// for it. The multiplier is a fixed policy constant approximating notional
// exposure, not a hedge ratio.
type ProxyRule struct {
	TradableSymbol string               `yaml:"tradable_symbol" json:"tradable_symbol"`
	Multiplier     int                  `yaml:"multiplier" json:"multiplier"`
	Kind           types.InstrumentKind `yaml:"kind" json:"kind"`
	// Label is the human-readable proxy name used in display labels and
	// order messages, e.g. "NQ Proxy".
	Label string `yaml:"label" json:"label"`
}

// SymbolResolver resolves requested symbols into tradable instruments using
// immutable tables injected at construction. It is pure and safe for
// concurrent use.
type SymbolResolver struct {
	rules        map[string]ProxyRule
	verified     map[string]bool
	verifiedList []string
}

// NewSymbolResolver builds a resolver from a proxy-rule table and the
// verified-tradable symbol set. It fails if any rule points at a symbol
// outside the verified set, since a proxy that the sandbox also rejects
// defeats the purpose of the substitution.
func NewSymbolResolver(rules map[string]ProxyRule, verified []string) (*SymbolResolver, error) {
	verifiedSet := make(map[string]bool, len(verified))
	verifiedList := make([]string, 0, len(verified))

	for _, symbol := range verified {
		upper := strings.ToUpper(strings.TrimSpace(symbol))
		if upper == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration, "verified symbol set contains an empty symbol")
		}

		if !verifiedSet[upper] {
			verifiedSet[upper] = true

			verifiedList = append(verifiedList, upper)
		}
	}

	if len(verifiedList) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "verified symbol set is empty")
	}

	normalized := make(map[string]ProxyRule, len(rules))

	for alias, rule := range rules {
		upperAlias := strings.ToUpper(strings.TrimSpace(alias))
		rule.TradableSymbol = strings.ToUpper(strings.TrimSpace(rule.TradableSymbol))

		if rule.Multiplier < 1 {
			return nil, errors.Newf(errors.ErrCodeInvalidConfiguration,
				"proxy rule for %s has multiplier %d, must be >= 1", upperAlias, rule.Multiplier)
		}

		if rule.Kind == types.InstrumentKindDirect {
			return nil, errors.Newf(errors.ErrCodeInvalidConfiguration,
				"proxy rule for %s must not use the direct kind", upperAlias)
		}

		if !verifiedSet[rule.TradableSymbol] {
			return nil, errors.Newf(errors.ErrCodeInvalidConfiguration,
				"proxy rule for %s targets %s which is not in the verified symbol set",
				upperAlias, rule.TradableSymbol)
		}

		normalized[upperAlias] = rule
	}

	return &SymbolResolver{
		rules:        normalized,
		verified:     verifiedSet,
		verifiedList: verifiedList,
	}, nil
}

// NewDefaultSymbolResolver builds a resolver with the stock alias groups and
// verified symbols known to work in the Tradier sandbox.
func NewDefaultSymbolResolver() (*SymbolResolver, error) {
	return NewSymbolResolver(DefaultProxyRules(), DefaultVerifiedSymbols())
}

// Resolve maps a requested symbol to a tradable instrument. It is a pure
// function: no side effects, identical output for identical input.
func (r *SymbolResolver) Resolve(symbol string) (types.ResolvedInstrument, error) {
	upper := strings.ToUpper(strings.TrimSpace(symbol))

	if rule, ok := r.rules[upper]; ok {
		return types.ResolvedInstrument{
			RequestedSymbol: upper,
			TradableSymbol:  rule.TradableSymbol,
			Multiplier:      rule.Multiplier,
			DisplayLabel:    fmt.Sprintf("%s (%s x%d)", rule.TradableSymbol, rule.Label, rule.Multiplier),
			Kind:            rule.Kind,
		}, nil
	}

	if r.verified[upper] {
		return types.ResolvedInstrument{
			RequestedSymbol: upper,
			TradableSymbol:  upper,
			Multiplier:      1,
			DisplayLabel:    upper,
			Kind:            types.InstrumentKindDirect,
		}, nil
	}

	return types.ResolvedInstrument{}, errors.Wrap(errors.ErrCodeUnsupportedSymbol,
		"symbol is not tradable in the sandbox",
		errors.NewUnsupportedSymbolError(upper, r.VerifiedSymbols()))
}

// VerifiedSymbols returns a copy of the verified symbol set in configured order.
func (r *SymbolResolver) VerifiedSymbols() []string {
	symbols := make([]string, len(r.verifiedList))
	copy(symbols, r.verifiedList)

	return symbols
}

// IsVerified reports whether a symbol is directly orderable without substitution.
func (r *SymbolResolver) IsVerified(symbol string) bool {
	return r.verified[strings.ToUpper(strings.TrimSpace(symbol))]
}

// Rule returns the proxy rule for an alias, if one exists.
func (r *SymbolResolver) Rule(alias string) (ProxyRule, bool) {
	rule, ok := r.rules[strings.ToUpper(strings.TrimSpace(alias))]

	return rule, ok
}
