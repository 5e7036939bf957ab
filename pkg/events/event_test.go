package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewBaseEvent("LOAN_OPENED", "borrower_lender_20260901", "Loan")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "LOAN_OPENED" {
		t.Errorf("expected event type %q, got %q", "LOAN_OPENED", event.EventType())
	}

	if event.AggregateID() != "borrower_lender_20260901" {
		t.Errorf("unexpected aggregate ID %q", event.AggregateID())
	}

	if event.AggregateType() != "Loan" {
		t.Errorf("expected aggregate type %q, got %q", "Loan", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventMarshalsAllFields(t *testing.T) {
	event := NewBaseEvent("LOAN_SETTLED", "agg-1", "Loan")

	raw, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"event_id", "event_type", "aggregate_id", "aggregate_type", "occurred_at"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in serialised event", key)
		}
	}
}
