package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestUpdateEstimateRequest_ResolveLineItems(t *testing.T) {
	var absent UpdateEstimateRequest
	if err := json.Unmarshal([]byte(`{"notes":"x"}`), &absent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := absent.ResolveLineItems(); got != nil {
		t.Fatalf("expected nil items when omitted, got %v", got)
	}

	var present UpdateEstimateRequest
	body := `{"line_items":[{"action":" Install ","amount":"100.10","description":" Heater "},{"action":"Haul","amount":25,"description":"Removal"}]}`
	if err := json.Unmarshal([]byte(body), &present); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := present.ResolveLineItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Action != "Install" || items[0].Description != "Heater" {
		t.Fatalf("expected trimmed text, got %+v", items[0])
	}
	if !items[0].Amount.Equal(decimal.RequireFromString("100.10")) || !items[1].Amount.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("unexpected amounts %s %s", items[0].Amount, items[1].Amount)
	}

	var emptied UpdateEstimateRequest
	if err := json.Unmarshal([]byte(`{"line_items":[]}`), &emptied); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := emptied.ResolveLineItems(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil items, got %v", got)
	}
}

func TestRecordPaymentRequest_ResolvePaymentDate(t *testing.T) {
	d, err := RecordPaymentRequest{}.ResolvePaymentDate()
	if err != nil || d != nil {
		t.Fatalf("expected nil date, got %v %v", d, err)
	}

	d, err = RecordPaymentRequest{PaymentDate: "2025-03-16"}.ResolvePaymentDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", d)
	}

	_, err = RecordPaymentRequest{PaymentDate: "16/03/2025"}.ResolvePaymentDate()
	if !errors.Is(err, ErrInvalidPaymentDate) {
		t.Fatalf("expected ErrInvalidPaymentDate, got %v", err)
	}
}

func TestResolveProviderPayload(t *testing.T) {
	got, err := ResolveProviderPayload([]byte("  "))
	if err != nil || string(got) != "{}" {
		t.Fatalf("expected empty object, got %s %v", got, err)
	}

	got, err = ResolveProviderPayload([]byte(`{"provider_payload":{"token":"abc"}}`))
	if err != nil || string(got) != `{"token":"abc"}` {
		t.Fatalf("expected unwrapped payload, got %s %v", got, err)
	}

	got, err = ResolveProviderPayload([]byte(`{"token":"abc"}`))
	if err != nil || string(got) != `{"token":"abc"}` {
		t.Fatalf("expected bare payload, got %s %v", got, err)
	}

	if _, err := ResolveProviderPayload([]byte(`{"provider_payload":null}`)); !errors.Is(err, ErrEmptyProviderPayload) {
		t.Fatalf("expected ErrEmptyProviderPayload, got %v", err)
	}
	if _, err := ResolveProviderPayload([]byte(`{`)); !errors.Is(err, ErrPayloadNotJSON) {
		t.Fatalf("expected ErrPayloadNotJSON, got %v", err)
	}
}
