package events

import (
	"context"
	"log/slog"

	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/shared"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type msgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

// NATSPublisher publishes each event on <prefix>.<event type>.
type NATSPublisher struct {
	conn   msgPublisher
	prefix string
	logger *slog.Logger
}

func ConnectNATS(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url, nats.Name("agenda-engine"))
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to NATS")
	}
	return conn, nil
}

func NewNATSPublisher(conn msgPublisher, prefix string, logger *slog.Logger) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: prefix, logger: logger}
}

func (n *NATSPublisher) Publish(ctx context.Context, evt shared.BookingEvent) error {
	payload, err := encode(evt)
	if err != nil {
		return err
	}

	msg := nats.NewMsg(n.prefix + "." + string(evt.Type))
	msg.Data = payload
	msg.Header.Set(headerEventID, eventID(evt))
	msg.Header.Set(headerEventType, string(evt.Type))
	msg.Header.Set(nats.MsgIdHdr, eventID(evt))
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(msg.Header))

	n.logger.DebugContext(ctx, "Publishing event", slog.String("subject", msg.Subject))
	if err := n.conn.PublishMsg(msg); err != nil {
		return errs.Wrap(err, "publish "+msg.Subject)
	}
	return nil
}
