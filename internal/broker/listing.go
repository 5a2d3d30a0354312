package broker

import (
	"encoding/json"
	"net/http"

	"github.com/jptrading/proxytrader/internal/types"
	"github.com/jptrading/proxytrader/pkg/errors"
)

// Quote and order-listing bodies nest a single object when one element exists
// and an array otherwise. The parse helpers below accept both.

type quotesEnvelope struct {
	Quotes struct {
		Quote json.RawMessage `json:"quote"`
	} `json:"quotes"`
}

// The orders field is either an object holding the order set or the JSON
// string "null" when the account has no orders, so it is decoded in two steps.
type ordersEnvelope struct {
	Orders json.RawMessage `json:"orders"`
}

type orderSetBody struct {
	Order json.RawMessage `json:"order"`
}

type brokerOrderBody struct {
	ID       json.RawMessage `json:"id"`
	Symbol   string          `json:"symbol"`
	Side     string          `json:"side"`
	Quantity float64         `json:"quantity"`
	Status   string          `json:"status"`
	Price    json.Number     `json:"price"`
}

// ParseQuote interprets a quote-endpoint response as a symbol check: a
// quotable symbol is considered orderable in the sandbox.
func (n *Normalizer) ParseQuote(raw RawResponse, symbol string) types.SymbolCheck {
	check := types.SymbolCheck{
		Symbol:     symbol,
		Valid:      false,
		StatusCode: raw.StatusCode,
		Quote:      nil,
	}

	if raw.StatusCode != http.StatusOK {
		return check
	}

	var envelope quotesEnvelope
	if err := json.Unmarshal(raw.Body, &envelope); err != nil {
		return check
	}

	quote, ok := firstQuote(envelope.Quotes.Quote)
	if ok && quote.Symbol != "" {
		check.Valid = true
		check.Quote = &quote
	}

	return check
}

// ParseOrders interprets an order-listing response. A missing or empty order
// set yields an empty slice, not an error.
func (n *Normalizer) ParseOrders(raw RawResponse) ([]types.BrokerOrder, error) {
	if raw.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.ErrCodeOrderRejected,
			"order listing returned status %d", raw.StatusCode)
	}

	var envelope ordersEnvelope
	if err := json.Unmarshal(raw.Body, &envelope); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParseFailure, "unparseable order listing body", err)
	}

	if len(envelope.Orders) == 0 || string(envelope.Orders) == "null" {
		return []types.BrokerOrder{}, nil
	}

	var orderSet orderSetBody
	if err := json.Unmarshal(envelope.Orders, &orderSet); err != nil {
		// The brokerage reports an empty account as the string "null".
		return []types.BrokerOrder{}, nil
	}

	bodies := orderBodies(orderSet.Order)

	orders := make([]types.BrokerOrder, 0, len(bodies))
	for _, body := range bodies {
		orders = append(orders, convertBrokerOrder(body))
	}

	return orders, nil
}

func firstQuote(raw json.RawMessage) (types.Quote, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return types.Quote{}, false
	}

	var single types.Quote
	if err := json.Unmarshal(raw, &single); err == nil {
		return single, true
	}

	var list []types.Quote
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0], true
	}

	return types.Quote{}, false
}

func orderBodies(raw json.RawMessage) []brokerOrderBody {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var single brokerOrderBody
	if err := json.Unmarshal(raw, &single); err == nil {
		return []brokerOrderBody{single}
	}

	var list []brokerOrderBody
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	return nil
}

func convertBrokerOrder(body brokerOrderBody) types.BrokerOrder {
	price := body.Price.String()
	if price == "" {
		price = "Market"
	}

	return types.BrokerOrder{
		ID:       parseOrderID(body.ID),
		Symbol:   body.Symbol,
		Side:     types.TradeAction(body.Side),
		Quantity: int(body.Quantity),
		Status:   body.Status,
		Price:    price,
	}
}
