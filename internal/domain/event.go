package domain

import "time"

// EventValueTransferred names the event emitted when a transfer completes.
const EventValueTransferred = "value_transferred"

// Event is an immutable fact about something that happened to an
// aggregate. It is not a command: consumers react to it after the fact.
type Event struct {
	Name        string    `json:"name"`
	AggregateID string    `json:"aggregateId"`
	OccurredAt  time.Time `json:"occurredAt"`
}
