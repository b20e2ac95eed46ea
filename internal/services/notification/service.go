// Package notification consumes value_transferred events and triggers
// the remote transfer notifier. It runs out-of-band from the transfer
// request: by the time an event reaches it, the money already moved.
package notification

import (
	"context"

	"pingo/internal/domain"
	"pingo/internal/telemetry"
)

// TransferNotifier calls the remote notification service.
type TransferNotifier interface {
	Notify(ctx context.Context) error
}

// EventSubscriber registers a handler with the external queue. The
// handler's nil return acknowledges the delivery.
type EventSubscriber interface {
	Subscribe(topic string, handler func(domain.Event) error) error
}

// Service is the notification consumer.
type Service struct {
	queue    EventSubscriber
	notifier TransferNotifier
}

// NewService creates a new notification service.
func NewService(queue EventSubscriber, notifier TransferNotifier) *Service {
	if queue == nil {
		panic("event subscriber is required")
	}
	if notifier == nil {
		panic("transfer notifier is required")
	}
	return &Service{queue: queue, notifier: notifier}
}

// Start registers the value_transferred consumer. A notifier failure is
// returned to the queue client so the delivery stays unacknowledged and
// the broker redelivers it. Delivery is at-least-once and the notifier
// call is unconditional, so duplicate notifications are possible.
func (s *Service) Start(ctx context.Context) error {
	return s.queue.Subscribe(domain.EventValueTransferred, func(event domain.Event) error {
		if err := s.notifier.Notify(ctx); err != nil {
			telemetry.NotificationsTotal.WithLabelValues("failed").Inc()
			return err
		}
		telemetry.NotificationsTotal.WithLabelValues("success").Inc()
		return nil
	})
}
