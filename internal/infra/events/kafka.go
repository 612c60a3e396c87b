package events

import (
	"context"
	"log/slog"

	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher keys messages by appointment so one booking's events stay ordered.
type KafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaPublisher(writer messageWriter, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, logger: logger}
}

func (k *KafkaPublisher) Publish(ctx context.Context, evt shared.BookingEvent) error {
	payload, err := encode(evt)
	if err != nil {
		return err
	}

	headers := []kafka.Header{
		{Key: headerEventID, Value: []byte(eventID(evt))},
		{Key: headerEventType, Value: []byte(evt.Type)},
	}
	msg := kafka.Message{
		Key:     []byte(evt.AppointmentID.String()),
		Value:   payload,
		Headers: injectTraceHeaders(ctx, headers),
		Time:    evt.OccurredAt,
	}

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "write booking event")
	}
	k.logger.DebugContext(ctx, "Published event", slog.String("type", string(evt.Type)))
	return nil
}

func injectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier.headers
}

type headerCarrier struct {
	headers []kafka.Header
}

func (c *headerCarrier) Get(key string) string {
	for _, h := range c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)
