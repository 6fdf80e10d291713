package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// ErrNATSURLRequired is returned when no server URL is configured.
var ErrNATSURLRequired = errors.New("NATS URL is required")

// flushTimeout bounds Flush when ctx has no deadline.
const flushTimeout = 10 * time.Second

// NATSConfig configures the NATS connection.
type NATSConfig struct {
	// URL of the server, e.g. nats://127.0.0.1:4222
	URL string

	// Name reported to the server
	Name string

	// Timeout for the initial connection
	Timeout time.Duration
}

// NATSPublisher publishes events as NATS messages.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to the server in config.
func NewNATSPublisher(config *NATSConfig) (*NATSPublisher, error) {
	if config == nil || config.URL == "" {
		return nil, ErrNATSURLRequired
	}

	opts := []nats.Option{}
	if config.Name != "" {
		opts = append(opts, nats.Name(config.Name))
	}

	if config.Timeout > 0 {
		opts = append(opts, nats.Timeout(config.Timeout))
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return NewNATSPublisherFromConn(conn), nil
}

// NewNATSPublisherFromConn wraps an existing connection.
func NewNATSPublisherFromConn(conn *nats.Conn) *NATSPublisher {
	return &NATSPublisher{conn: conn}
}

// Publish sends data on subject. The id is set as the Nats-Msg-Id header so
// JetStream streams drop redelivered events.
func (p *NATSPublisher) Publish(ctx context.Context, subject, id string, data []byte) error {
	err := ctx.Err()
	if err != nil {
		return err
	}

	msg := nats.NewMsg(subject)
	msg.Data = data

	if id != "" {
		msg.Header.Set(nats.MsgIdHdr, id)
	}

	err = p.conn.PublishMsg(msg)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	return nil
}

// Flush waits until the server has processed every published message.
func (p *NATSPublisher) Flush(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, flushTimeout)
		defer cancel()
	}

	err := p.conn.FlushWithContext(ctx)
	if err != nil {
		return fmt.Errorf("flushing NATS connection: %w", err)
	}

	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() error {
	err := p.conn.Drain()
	if err != nil {
		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}
