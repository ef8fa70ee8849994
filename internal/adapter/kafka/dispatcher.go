// Package kafka publishes alert messages to a broker topic. It implements
// domain.Dispatcher for deployments with a real delivery channel behind the
// topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/haitialert/alertnet/internal/config"
	"github.com/haitialert/alertnet/internal/domain"
)

// Dispatcher produces one message per alert to the configured topic.
type Dispatcher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewDispatcher creates a Kafka producer for the alert topic.
func NewDispatcher(cfg *config.Config, logger *slog.Logger) *Dispatcher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAlertTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Dispatcher{writer: w, logger: logger}
}

// Dispatch serializes and publishes one alert, keyed by report id so
// per-report alerts stay ordered.
func (d *Dispatcher) Dispatch(ctx context.Context, msg domain.AlertMessage) error {
	kafkaMsg, err := serializeToMessage(msg)
	if err != nil {
		return err
	}
	if err := d.writer.WriteMessages(ctx, kafkaMsg); err != nil {
		return fmt.Errorf("publish alert: %w", err)
	}
	d.logger.Debug("alert published", "report_id", msg.ReportID, "recipient", msg.Recipient)
	return nil
}

func (d *Dispatcher) Close() error {
	return d.writer.Close()
}

// serializeToMessage marshals an AlertMessage into a Kafka message.
func serializeToMessage(msg domain.AlertMessage) (kafkago.Message, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize alert: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(msg.ReportID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "disaster_type", Value: []byte(msg.Type)},
			{Key: "recipient", Value: []byte(msg.Recipient)},
		},
	}, nil
}
