package pubsub

import (
	"cloud.google.com/go/pubsub"
	"github.com/vmihailenco/msgpack/v5"
)

type client struct {
	client      *pubsub.Client
	topicPrefix string
	teardown    func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchReported EventType = "match-reported"
	EventRoundPaired   EventType = "round-paired"
)

// Envelope wraps every published payload.
type Envelope struct {
	ID         string             `msgpack:"id"`
	Type       EventType          `msgpack:"type"`
	OccurredAt int64              `msgpack:"occurred_at"`
	Payload    msgpack.RawMessage `msgpack:"payload"`
}
