package types

import (
	"github.com/shopspring/decimal"
)

// Quote is a single market quote from the brokerage quote endpoint.
type Quote struct {
	Symbol      string          `json:"symbol"`
	Description string          `json:"description"`
	Last        decimal.Decimal `json:"last"`
	Bid         decimal.Decimal `json:"bid"`
	Ask         decimal.Decimal `json:"ask"`
}

// SymbolCheck reports whether a symbol is quotable, and therefore likely
// orderable, in the target sandbox environment.
type SymbolCheck struct {
	Symbol     string `json:"symbol"`
	Valid      bool   `json:"valid"`
	StatusCode int    `json:"status_code"`
	Quote      *Quote `json:"quote,omitempty"`
}

// BrokerOrder is a single entry from the brokerage order-listing endpoint.
type BrokerOrder struct {
	ID       string      `json:"id"`
	Symbol   string      `json:"symbol"`
	Side     TradeAction `json:"side"`
	Quantity int         `json:"quantity"`
	Status   string      `json:"status"`
	Price    string      `json:"price"`
}

// ClassifiedOrder is a BrokerOrder annotated with the proxy rule it appears
// to have been placed under. InferredUnits is the original contract count
// implied by the quantity and the rule's multiplier.
type ClassifiedOrder struct {
	BrokerOrder
	Kind          InstrumentKind `json:"kind"`
	InferredUnits int            `json:"inferred_units"`
	Label         string         `json:"label"`
}
