// Command invalidate tells every running dashboard to refetch the given
// namespaces, e.g. after a bulk import on the backend:
//
//	CONFIG_PATH=config.yaml invalidate flights bookings
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/kafka"
	"github.com/google/uuid"
)

func main() {
	source := flag.String("source", "cli", "event source name")
	flag.Parse()

	namespaces := flag.Args()
	if len(namespaces) == 0 {
		log.Fatalf("usage: invalidate [-source name] namespace...")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatalf("kafka is not configured in %s", cfgPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.InvalidationTopic, *source)
	defer producer.Close()

	event := kafka.InvalidationEvent{
		ID:         uuid.NewString(),
		Source:     *source,
		Namespaces: namespaces,
		At:         time.Now().UTC(),
	}
	if err := producer.Publish(ctx, event); err != nil {
		log.Fatalf("publish: %v", err)
	}
	log.Printf("published invalidation %s: %v", event.ID, namespaces)
}
