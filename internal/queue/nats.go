// Package queue implements the event queue contract on NATS JetStream.
// Messages are durable on the broker side; a consumer acknowledges a
// delivery only when its handler returns without error, so failed
// deliveries become eligible for redelivery.
package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pingo/internal/domain"

	"github.com/nats-io/nats.go"
)

const (
	streamName    = "PINGO_EVENTS"
	subjectPrefix = "events."
)

// EventQueue wraps a NATS JetStream connection behind the
// Connect/Publish/Subscribe contract.
type EventQueue struct {
	url  string
	conn *nats.Conn
	js   nats.JetStreamContext
}

func New(url string) *EventQueue {
	return &EventQueue{url: url}
}

// Connect establishes the NATS connection and ensures the event stream
// exists with file-backed storage.
func (q *EventQueue) Connect() error {
	opts := []nats.Option{
		nats.Name("pingo"),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(10),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats disconnected", "err", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(q.url, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to nats: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to get jetstream context: %w", err)
	}

	if _, err := js.StreamInfo(streamName); err != nil {
		if !errors.Is(err, nats.ErrStreamNotFound) {
			conn.Close()
			return fmt.Errorf("failed to look up stream: %w", err)
		}
		_, err = js.AddStream(&nats.StreamConfig{
			Name:     streamName,
			Subjects: []string{subjectPrefix + ">"},
			Storage:  nats.FileStorage,
		})
		if err != nil {
			conn.Close()
			return fmt.Errorf("failed to create stream: %w", err)
		}
	}

	q.conn = conn
	q.js = js
	return nil
}

// Publish sends one event under the given topic. The broker persists it
// before the call returns; delivery to consumers is asynchronous.
func (q *EventQueue) Publish(topic string, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if _, err := q.js.Publish(subjectPrefix+topic, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Subscribe registers a durable consumer for the topic. Each delivery is
// acknowledged only when handler returns nil; otherwise the message is
// negatively acknowledged and redelivered. Delivery is at-least-once, so
// handlers must tolerate duplicates.
func (q *EventQueue) Subscribe(topic string, handler func(domain.Event) error) error {
	_, err := q.js.Subscribe(subjectPrefix+topic, func(msg *nats.Msg) {
		var event domain.Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			slog.Error("dropping undecodable event", "topic", topic, "err", err)
			_ = msg.Term()
			return
		}
		if err := handler(event); err != nil {
			slog.Error("event handler failed", "topic", topic, "aggregate_id", event.AggregateID, "err", err)
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	}, nats.Durable("pingo_"+topic), nats.ManualAck(), nats.AckExplicit())
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	return nil
}

// Close drains the connection, letting in-flight deliveries finish
// before it shuts down. Drain closes the connection itself once every
// subscription is done; the deadline here only bounds the wait.
func (q *EventQueue) Close() {
	if q.conn == nil {
		return
	}

	done := make(chan struct{})
	q.conn.SetClosedHandler(func(*nats.Conn) { close(done) })

	if err := q.conn.Drain(); err != nil {
		slog.Warn("nats drain failed, closing immediately", "err", err)
		q.conn.Close()
		return
	}

	select {
	case <-done:
	case <-time.After(nats.DefaultDrainTimeout + time.Second):
		slog.Warn("nats drain timed out, closing connection")
		q.conn.Close()
	}
}
