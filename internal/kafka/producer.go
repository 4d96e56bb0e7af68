package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes the namespaces this instance invalidated after a write.
type Producer struct {
	writer   messageWriter
	topic    string
	source   string
	deadline time.Duration
	pending  sync.WaitGroup
}

func NewProducer(brokers []string, topic, source string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return newProducer(writer, topic, source)
}

func newProducer(w messageWriter, topic, source string) *Producer {
	return &Producer{writer: w, topic: topic, source: source, deadline: 5 * time.Second}
}

func (p *Producer) Publish(ctx context.Context, event InvalidationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.Source),
		Value: data,
		Time:  event.At,
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

// NamespacesInvalidated publishes an InvalidationEvent in the background and
// returns at once: the write it follows has already succeeded, so a slow or
// unreachable broker only gets a log line. Close waits for pending publishes.
func (p *Producer) NamespacesInvalidated(ctx context.Context, namespaces []string) {
	event := InvalidationEvent{
		ID:         uuid.NewString(),
		Source:     p.source,
		Namespaces: namespaces,
		At:         time.Now().UTC(),
	}
	ctx = context.WithoutCancel(ctx)

	p.pending.Add(1)
	go func() {
		defer p.pending.Done()
		ctx, cancel := context.WithTimeout(ctx, p.deadline)
		defer cancel()

		if err := p.Publish(ctx, event); err != nil {
			log.Printf("WARNING: failed to publish invalidation of %v: %v", namespaces, err)
			return
		}
		log.Printf("published invalidation %s of %v", event.ID, namespaces)
	}()
}

func (p *Producer) Close() error {
	p.pending.Wait()
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
