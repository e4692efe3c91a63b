package kafka

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/events"
)

const (
	defaultBrokers = "localhost:9092"
	defaultGroupID = "basecommerce-plugin"
	defaultTopic   = "killbill-events"
)

// EventConsumer reads host bus events from Kafka and feeds them to the
// listener. At-least-once: offsets are committed only after the listener
// handled the message. Malformed payloads are logged and committed so they
// do not wedge the partition.

type EventConsumer struct {
	reader   *kafka.Reader
	listener *events.Listener
}

func NewEventConsumer(listener *events.Listener) *EventConsumer {
	brokers := strings.Split(getenvDefault("KAFKA_BROKERS", defaultBrokers), ",")
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  getenvDefault("KAFKA_GROUP_ID", defaultGroupID),
		Topic:    getenvDefault("KAFKA_EVENTS_TOPIC", defaultTopic),
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &EventConsumer{reader: reader, listener: listener}
}

func (c *EventConsumer) Start(ctx context.Context) error {
	log.Printf("[events][kafka] consumer starting topic=%s group_id=%s", c.reader.Config().Topic, c.reader.Config().GroupID)

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("[events][kafka] consumer stopping")
				return nil
			}
			log.Printf("[events][kafka] fetch failed err=%v", err)
			continue
		}

		if c.processMessage(ctx, m) {
			if err := c.reader.CommitMessages(ctx, m); err != nil {
				log.Printf("[events][kafka] commit failed partition=%d offset=%d err=%v", m.Partition, m.Offset, err)
			}
		}
	}
}

func (c *EventConsumer) processMessage(ctx context.Context, m kafka.Message) bool {
	var ev events.ExtEvent
	if err := json.Unmarshal(m.Value, &ev); err != nil {
		log.Printf("[events][kafka] malformed message partition=%d offset=%d err=%v", m.Partition, m.Offset, err)
		return true
	}

	if err := c.listener.HandleEvent(ctx, ev); err != nil {
		log.Printf("[events][kafka] handling failed type=%s tenant_id=%s err=%v", ev.Type, ev.TenantID, err)
		return false
	}
	return true
}

func (c *EventConsumer) Close() error {
	return c.reader.Close()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
