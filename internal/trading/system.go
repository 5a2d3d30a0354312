package trading

import (
	"context"
	"net/http"

	"github.com/jptrading/proxytrader/internal/broker"
	"github.com/jptrading/proxytrader/internal/logger"
	"github.com/jptrading/proxytrader/internal/resolver"
	"github.com/jptrading/proxytrader/internal/types"
	"github.com/jptrading/proxytrader/pkg/errors"
	"go.uber.org/zap"
)

// System is the orchestrator exposed to callers. One TradeIntent yields at
// most one outbound order attempt; no retries, no batching. It holds no
// per-request state and is safe for concurrent use.
type System struct {
	resolver   *resolver.SymbolResolver
	client     broker.Client
	normalizer *broker.Normalizer
	submitter  *OrderSubmitter
	log        *logger.Logger
}

// NewSystem wires a trading system over the given resolver and brokerage client.
func NewSystem(symbolResolver *resolver.SymbolResolver, client broker.Client, log *logger.Logger) *System {
	normalizer := broker.NewNormalizer()

	return &System{
		resolver:   symbolResolver,
		client:     client,
		normalizer: normalizer,
		submitter:  NewOrderSubmitter(client, normalizer, log),
		log:        log,
	}
}

// Execute runs one intent through resolve and submit. Every path returns an
// OrderResult; nothing is allowed to fault past this boundary.
func (s *System) Execute(ctx context.Context, intent types.TradeIntent) types.OrderResult {
	intent = types.NewTradeIntent(intent.Symbol, intent.Action, intent.Quantity)

	if err := intent.Validate(); err != nil {
		return types.NewFailureResult(types.ErrorKindMalformedPayload,
			"trade intent for "+intent.Symbol+" is invalid: "+err.Error())
	}

	resolved, err := s.resolver.Resolve(intent.Symbol)
	if err != nil {
		s.log.Warn("symbol resolution failed",
			zap.String("symbol", intent.Symbol),
			zap.Error(err),
		)

		message := err.Error()

		var unsupportedErr *errors.UnsupportedSymbolError
		if errors.As(err, &unsupportedErr) {
			message = unsupportedErr.Error()
		}

		return types.NewFailureResult(types.ErrorKindUnsupportedSymbol, message)
	}

	return s.submitter.Submit(ctx, resolved, intent.Action, intent.Quantity)
}

// CheckConnection probes the brokerage profile endpoint to verify
// connectivity and credentials.
func (s *System) CheckConnection(ctx context.Context) error {
	raw, err := s.client.TestConnection(ctx)
	if err != nil {
		return err
	}

	if raw.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrCodeConnectionFailed,
			"connection test returned status %d", raw.StatusCode)
	}

	return nil
}

// VerifySymbol checks whether a symbol is quotable in the sandbox without
// placing an order.
func (s *System) VerifySymbol(ctx context.Context, symbol string) (types.SymbolCheck, error) {
	intent := types.NewTradeIntent(symbol, types.TradeActionBuy, 1)

	raw, err := s.client.GetQuote(ctx, intent.Symbol)
	if err != nil {
		return types.SymbolCheck{Symbol: intent.Symbol, Valid: false, StatusCode: 0, Quote: nil},
			errors.Wrap(errors.ErrCodeQuoteFailed, "quote request failed", err)
	}

	return s.normalizer.ParseQuote(raw, intent.Symbol), nil
}

// ListOrders fetches the account's orders from the brokerage and annotates
// each with the proxy rule it appears to have been placed under.
func (s *System) ListOrders(ctx context.Context) ([]types.ClassifiedOrder, error) {
	raw, err := s.client.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.normalizer.ParseOrders(raw)
	if err != nil {
		return nil, err
	}

	classified := make([]types.ClassifiedOrder, 0, len(orders))

	for _, order := range orders {
		kind, label, units := s.resolver.ClassifyOrder(order.Symbol, order.Quantity)
		classified = append(classified, types.ClassifiedOrder{
			BrokerOrder:   order,
			Kind:          kind,
			InferredUnits: units,
			Label:         label,
		})
	}

	return classified, nil
}
