package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
)

// New connects to Google Cloud Pub/Sub. Events are published to topics named
// topicPrefix followed by the event type.
func New(ctx context.Context, projectID, topicPrefix string) (PubSubClient, func(), error) {
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	c := &client{
		client:      pubSubC,
		topicPrefix: topicPrefix,
	}
	c.teardown = func() {
		if err := pubSubC.Close(); err != nil {
			log.Error("Failed to close pubsub client", "error", err)
		}
	}
	return c, c.teardown, nil
}

func (c *client) SendMessage(ctx context.Context, event EventType, data any) error {
	env, raw, err := Encode(event, data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	message := &pubsub.Message{
		Data: raw,
		Attributes: map[string]string{
			"event_id":   env.ID,
			"event_type": string(event),
		},
	}
	topic := c.topicPrefix + string(event)
	result := c.client.Topic(topic).Publish(ctx, message)
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", topic)
		return err
	}
	log.Info("SendMessage", "serverID", serverID, "topic", topic, "eventID", env.ID)
	return nil
}

func (c *client) ProcessMessage(data []byte, returnValue any) error {
	// Unmarshal the MessagePack data into the provided pointer struct
	env, err := Decode(data, returnValue)
	if err != nil {
		log.Error("MessagePack unmarshal error", "error", err)
		return err
	}
	log.Debug("Processed message", "eventID", env.ID, "type", env.Type)
	return nil
}
