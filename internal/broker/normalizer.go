package broker

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jptrading/proxytrader/internal/types"
)

const (
	// UnknownOrderID is the sentinel reported when a success body carries
	// no usable order identifier.
	UnknownOrderID = "unknown"

	// maxRawDetailLen bounds the raw-text excerpt used when a failure body
	// cannot be interpreted.
	maxRawDetailLen = 200
)

// Normalizer turns raw brokerage HTTP outcomes into canonical OrderResults.
// It is stateless and never lets a JSON parse error escape its boundary.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Recognized brokerage response shapes. Anything that fits neither is
// treated as unrecognized and degraded to a normalized failure.

type orderEnvelope struct {
	Order struct {
		ID json.RawMessage `json:"id"`
	} `json:"order"`
}

type faultstringEnvelope struct {
	FaultString string `json:"faultstring"`
}

// Normalize interprets an order-placement response. contextLabel describes
// the attempt (e.g. "NQ PROXY order: buy 10 QQQ") and prefixes every message.
func (n *Normalizer) Normalize(raw RawResponse, contextLabel string) types.OrderResult {
	if raw.StatusCode == http.StatusOK || raw.StatusCode == http.StatusCreated {
		var envelope orderEnvelope
		if err := json.Unmarshal(raw.Body, &envelope); err != nil {
			return types.NewFailureResult(types.ErrorKindParseFailure,
				fmt.Sprintf("%s processing failed: unparseable brokerage response", contextLabel))
		}

		orderID := parseOrderID(envelope.Order.ID)

		return types.NewSuccessResult(orderID, fmt.Sprintf("%s placed", contextLabel))
	}

	details := extractFault(raw.Body)

	return types.NewFailureResultWithDetails(types.ErrorKindRejected,
		fmt.Sprintf("%s rejected: %s", contextLabel, details), details)
}

// parseOrderID accepts the order identifier as either a JSON string or a
// JSON number, falling back to the unknown sentinel.
func parseOrderID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return UnknownOrderID
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return UnknownOrderID
		}

		return asString
	}

	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}

	return UnknownOrderID
}

// extractFault pulls the brokerage's own fault text out of a failure body.
// It recognizes the fault envelope shape; any other JSON or raw text is
// truncated and used verbatim.
func extractFault(body []byte) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return truncate(string(body), maxRawDetailLen)
	}

	if faultRaw, ok := envelope["fault"]; ok {
		var fault faultstringEnvelope
		if err := json.Unmarshal(faultRaw, &fault); err == nil && fault.FaultString != "" {
			return fault.FaultString
		}

		return "Unknown error"
	}

	return truncate(string(body), maxRawDetailLen)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit]
}
