// Package pubsub fans theme change notifications out to any number of
// subscribers.
package pubsub

import (
	"context"
	"time"
)

// EventType says what happened to the payload.
type EventType string

const (
	AddedEvent   EventType = "added"
	ChangedEvent EventType = "changed"
	RemovedEvent EventType = "removed"
)

// Event is one published notification.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
