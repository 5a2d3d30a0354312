package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jptrading/proxytrader/pkg/errors"
)

type TradeAction string

const (
	TradeActionBuy  TradeAction = "buy"
	TradeActionSell TradeAction = "sell"
)

// TradeIntent is the caller's requested action prior to symbol resolution.
// It is created once from an inbound request or a direct caller and never mutated.
type TradeIntent struct {
	Symbol   string      `yaml:"symbol" json:"symbol" validate:"required"`
	Action   TradeAction `yaml:"action" json:"action" validate:"required,oneof=buy sell"`
	Quantity int         `yaml:"quantity" json:"quantity" validate:"required,gt=0"`
}

// NewTradeIntent builds a TradeIntent with the symbol uppercased and the
// action lowercased so equivalent requests compare equal.
func NewTradeIntent(symbol string, action TradeAction, quantity int) TradeIntent {
	return TradeIntent{
		Symbol:   strings.ToUpper(strings.TrimSpace(symbol)),
		Action:   TradeAction(strings.ToLower(string(action))),
		Quantity: quantity,
	}
}

// Validate validates the TradeIntent struct.
func (ti *TradeIntent) Validate() error {
	validate := validator.New()

	if err := validate.Struct(ti); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidIntent, "invalid trade intent", err)
	}

	return nil
}
