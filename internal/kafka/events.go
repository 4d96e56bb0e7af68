package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// InvalidationEvent tells other dashboard instances which cache namespaces a
// write on Source made stale.
type InvalidationEvent struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Namespaces []string  `json:"namespaces"`
	At         time.Time `json:"at"`
}

type Invalidator interface {
	Invalidate(namespaces ...string) int
}

// InvalidationHandler applies events from other instances to cache. Events of
// self were already applied locally; undecodable messages are skipped.
func InvalidationHandler(self string, cache Invalidator) func(context.Context, kafka.Message) error {
	return func(_ context.Context, msg kafka.Message) error {
		var event InvalidationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("decode invalidation event error: %v", err)
			return nil
		}
		if event.Source == self || len(event.Namespaces) == 0 {
			return nil
		}
		n := cache.Invalidate(event.Namespaces...)
		log.Printf("invalidation %s from %s: %v (%d keys)", event.ID, event.Source, event.Namespaces, n)
		return nil
	}
}
