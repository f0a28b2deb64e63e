package pubsub

import (
	"context"

	"github.com/charmbracelet/log"
)

// Nop is used when no Pub/Sub project is configured. It drops outgoing events
// and still decodes incoming ones.
type Nop struct{}

var _ PubSubClient = Nop{}

func (Nop) SendMessage(ctx context.Context, event EventType, data any) error {
	log.Debug("Event publishing disabled, dropping event", "type", event)
	return nil
}

func (Nop) ProcessMessage(data []byte, returnValue any) error {
	_, err := Decode(data, returnValue)
	return err
}
