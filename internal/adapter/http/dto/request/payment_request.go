package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrPayloadNotJSON       = errors.New("request body is not valid json")
	ErrEmptyProviderPayload = errors.New("provider_payload cannot be empty")
)

// CollectPaymentRequest wraps the raw payment provider payload. The payload is
// forwarded as-is so provider schema changes need no code change here.
//
// A bare provider payload (without the wrapper) is accepted as well.
type CollectPaymentRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload" swaggertype:"object"`
}

func ResolveProviderPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrPayloadNotJSON
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			v := strings.TrimSpace(string(wrapped))
			if v == "" || v == "null" {
				return nil, ErrEmptyProviderPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
