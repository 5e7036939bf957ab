package kafka

import (
	"testing"
)

func TestProducerReusesWriterPerTopic(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	w1 := p.writer("loan-events")
	w2 := p.writer("loan-events")
	if w1 != w2 {
		t.Error("expected the same writer for repeated topic")
	}

	w3 := p.writer("other")
	if w3 == w1 {
		t.Error("expected a distinct writer per topic")
	}
}

func TestProducerClose(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	p.writer("loan-events")

	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if len(p.writers) != 0 {
		t.Errorf("expected writers map cleared, got %d entries", len(p.writers))
	}
}
