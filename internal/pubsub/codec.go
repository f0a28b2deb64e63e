package pubsub

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Encode wraps data in an Envelope and serialises it with MessagePack.
func Encode(event EventType, data any) (Envelope, []byte, error) {
	payload, err := msgpack.Marshal(data)
	if err != nil {
		return Envelope{}, nil, fmt.Errorf("failed to encode %s payload: %w", event, err)
	}
	env := Envelope{
		ID:         uuid.NewString(),
		Type:       event,
		OccurredAt: time.Now().Unix(),
		Payload:    payload,
	}
	raw, err := msgpack.Marshal(&env)
	if err != nil {
		return Envelope{}, nil, fmt.Errorf("failed to encode %s envelope: %w", event, err)
	}
	return env, raw, nil
}

// Decode unwraps an Envelope and decodes its payload into returnValue.
func Decode(raw []byte, returnValue any) (Envelope, error) {
	var env Envelope
	if err := msgpack.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("failed to decode envelope: %w", err)
	}
	if err := msgpack.Unmarshal(env.Payload, returnValue); err != nil {
		return env, fmt.Errorf("failed to decode %s payload: %w", env.Type, err)
	}
	return env, nil
}
