package entities

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestJobStatus_Order(t *testing.T) {
	all := JobStatuses()
	if len(all) != 7 {
		t.Fatalf("expected 7 statuses, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i] <= all[i-1] {
			t.Fatalf("statuses out of order at %d", i)
		}
	}
}

func TestParseJobStatus(t *testing.T) {
	cases := map[string]JobStatus{
		"Estimate Created": JobStatusEstimateCreated,
		"estimate_sent":    JobStatusEstimateSent,
		" in progress ":    JobStatusInProgress,
		"PAID":             JobStatusPaid,
	}
	for in, want := range cases {
		got, err := ParseJobStatus(in)
		if err != nil || got != want {
			t.Fatalf("ParseJobStatus(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseJobStatus("cancelled"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestJobStatus_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		S JobStatus `json:"s"`
	}{JobStatusInProgress})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"s":"In Progress"}` {
		t.Fatalf("unexpected json %s", b)
	}

	var out struct {
		S JobStatus `json:"s"`
	}
	if err := json.Unmarshal([]byte(`{"s":"invoiced"}`), &out); err != nil || out.S != JobStatusInvoiced {
		t.Fatalf("unmarshal: %v %v", out.S, err)
	}
	if JobStatusPaid.Slug() != "paid" || JobStatusEstimateCreated.Slug() != "estimate_created" {
		t.Fatalf("unexpected slugs")
	}
}

func TestSumAndNumberLineItems(t *testing.T) {
	items := []LineItem{
		{ID: 9, Action: "Labor", Amount: decimal.RequireFromString("100.00")},
		{ID: 3, Action: "Parts", Amount: decimal.RequireFromString("250.50")},
	}
	if got := SumLineItems(items); !got.Equal(decimal.RequireFromString("350.50")) {
		t.Fatalf("unexpected total %s", got)
	}
	numbered := NumberLineItems(7, items)
	for i, it := range numbered {
		if it.ItemNumber != i+1 || it.JobID != 7 || it.ID != 0 {
			t.Fatalf("unexpected item %+v", it)
		}
	}
	if items[0].ID != 9 {
		t.Fatalf("input must not be mutated")
	}
}
