package types

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jptrading/proxytrader/pkg/errors"
)

type InstrumentKind string

const (
	InstrumentKindDirect   InstrumentKind = "DIRECT"
	InstrumentKindNQProxy  InstrumentKind = "NQ_PROXY"
	InstrumentKindSPXProxy InstrumentKind = "SPX_PROXY"
	InstrumentKindESProxy  InstrumentKind = "ES_PROXY"
	// InstrumentKindUnknown marks broker-side orders that match no known
	// proxy rule and no verified symbol, e.g. orders placed outside this
	// system.
	InstrumentKindUnknown InstrumentKind = "UNKNOWN"
)

const (
	OrderClassEquity = "equity"
	OrderTypeMarket  = "market"
	OrderDurationDay = "day"
)

// ResolvedInstrument is the outcome of symbol resolution: what to actually
// trade for a requested symbol. TradableSymbol is always a member of the
// verified-tradable set and Multiplier is 1 exactly when Kind is DIRECT.
type ResolvedInstrument struct {
	RequestedSymbol string         `yaml:"requested_symbol" json:"requested_symbol" validate:"required"`
	TradableSymbol  string         `yaml:"tradable_symbol" json:"tradable_symbol" validate:"required"`
	Multiplier      int            `yaml:"multiplier" json:"multiplier" validate:"required,gte=1"`
	DisplayLabel    string         `yaml:"display_label" json:"display_label" validate:"required"`
	Kind            InstrumentKind `yaml:"kind" json:"kind" validate:"required,oneof=DIRECT NQ_PROXY SPX_PROXY ES_PROXY"`
}

// IsProxy reports whether the instrument is a substitution rather than the
// symbol the caller asked for.
func (ri ResolvedInstrument) IsProxy() bool {
	return ri.Kind != InstrumentKindDirect
}

// OrderRequest is the brokerage-shaped payload for a single equity order.
// Derived deterministically from a ResolvedInstrument and a trade action;
// never persisted.
type OrderRequest struct {
	Class    string      `json:"class" validate:"required,eq=equity"`
	Symbol   string      `json:"symbol" validate:"required"`
	Side     TradeAction `json:"side" validate:"required,oneof=buy sell"`
	Quantity int         `json:"quantity" validate:"required,gt=0"`
	Type     string      `json:"type" validate:"required,eq=market"`
	Duration string      `json:"duration" validate:"required,eq=day"`
}

// NewMarketOrderRequest builds a day-duration market equity order.
func NewMarketOrderRequest(symbol string, side TradeAction, quantity int) OrderRequest {
	return OrderRequest{
		Class:    OrderClassEquity,
		Symbol:   symbol,
		Side:     side,
		Quantity: quantity,
		Type:     OrderTypeMarket,
		Duration: OrderDurationDay,
	}
}

// FormData renders the order as the form-encoded fields the brokerage expects.
func (or OrderRequest) FormData() map[string]string {
	return map[string]string{
		"class":    or.Class,
		"symbol":   or.Symbol,
		"side":     string(or.Side),
		"quantity": strconv.Itoa(or.Quantity),
		"type":     or.Type,
		"duration": or.Duration,
	}
}

// Validate validates the OrderRequest struct.
func (or *OrderRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(or); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid order request", err)
	}

	return nil
}
