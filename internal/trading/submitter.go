// Package trading composes symbol resolution, order submission, and response
// normalization into the pipeline exposed to webhook and direct callers.
package trading

import (
	"context"
	"fmt"

	"github.com/jptrading/proxytrader/internal/broker"
	"github.com/jptrading/proxytrader/internal/logger"
	"github.com/jptrading/proxytrader/internal/types"
	"go.uber.org/zap"
)

// orderKindLabel is the upper-case tag prefixing every order message,
// matching the brokerage-facing log vocabulary.
func orderKindLabel(kind types.InstrumentKind) string {
	switch kind {
	case types.InstrumentKindNQProxy:
		return "NQ PROXY"
	case types.InstrumentKindSPXProxy:
		return "SPX PROXY"
	case types.InstrumentKindESProxy:
		return "ES PROXY"
	default:
		return "VERIFIED STOCK"
	}
}

// proxyName is the lower-case kind name used in proxy explanations.
func proxyName(kind types.InstrumentKind) string {
	switch kind {
	case types.InstrumentKindNQProxy:
		return "NQ proxy"
	case types.InstrumentKindSPXProxy:
		return "SPX proxy"
	case types.InstrumentKindESProxy:
		return "ES proxy"
	default:
		return "direct"
	}
}

// OrderSubmitter turns a resolved instrument into exactly one outbound
// brokerage order per invocation. Transport failures are converted into
// failed OrderResults, never propagated, and never retried.
type OrderSubmitter struct {
	client     broker.Client
	normalizer *broker.Normalizer
	log        *logger.Logger
}

// NewOrderSubmitter creates a submitter over the given brokerage client.
func NewOrderSubmitter(client broker.Client, normalizer *broker.Normalizer, log *logger.Logger) *OrderSubmitter {
	return &OrderSubmitter{
		client:     client,
		normalizer: normalizer,
		log:        log,
	}
}

// Submit scales the requested quantity by the instrument's multiplier,
// places the order, and normalizes the outcome.
func (s *OrderSubmitter) Submit(ctx context.Context, resolved types.ResolvedInstrument, action types.TradeAction, quantity int) types.OrderResult {
	effectiveQuantity := quantity * resolved.Multiplier
	order := types.NewMarketOrderRequest(resolved.TradableSymbol, action, effectiveQuantity)

	contextLabel := fmt.Sprintf("%s order for %s: %s %d %s",
		orderKindLabel(resolved.Kind), resolved.RequestedSymbol, action, effectiveQuantity, resolved.TradableSymbol)

	s.log.Info("placing order",
		zap.String("requested_symbol", resolved.RequestedSymbol),
		zap.String("symbol", resolved.TradableSymbol),
		zap.String("side", string(action)),
		zap.Int("quantity", effectiveQuantity),
		zap.Int("multiplier", resolved.Multiplier),
		zap.String("kind", string(resolved.Kind)),
	)

	raw, err := s.client.PlaceOrder(ctx, order)
	if err != nil {
		s.log.Error("order transport failure",
			zap.String("requested_symbol", resolved.RequestedSymbol),
			zap.Error(err),
		)

		return types.NewFailureResult(types.ErrorKindTransport,
			fmt.Sprintf("%s failed: %v", contextLabel, err))
	}

	result := s.normalizer.Normalize(raw, contextLabel)

	if result.Success && resolved.IsProxy() {
		result.Message += fmt.Sprintf(" - using %d shares of %s as a %s for %d requested unit(s) (approximate notional exposure, not a hedge ratio)",
			effectiveQuantity, resolved.TradableSymbol, proxyName(resolved.Kind), quantity)
	}

	if !result.Success {
		s.log.Warn("order not accepted",
			zap.String("requested_symbol", resolved.RequestedSymbol),
			zap.Int("status", raw.StatusCode),
			zap.String("message", result.Message),
		)
	}

	return result
}
