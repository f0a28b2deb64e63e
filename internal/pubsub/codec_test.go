package pubsub

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundPayload struct {
	Number   int
	Pairings [][2]int64
}

func TestEncodeDecode(t *testing.T) {
	in := roundPayload{Number: 2, Pairings: [][2]int64{{1, 3}, {2, 4}}}

	env, raw, err := Encode(EventRoundPaired, in)
	require.NoError(t, err)
	_, err = uuid.Parse(env.ID)
	assert.NoError(t, err, "envelope ids are UUIDs")
	assert.Equal(t, EventRoundPaired, env.Type)

	var out roundPayload
	decoded, err := Decode(raw, &out)
	require.NoError(t, err)
	assert.Equal(t, env.ID, decoded.ID)
	assert.Equal(t, env.OccurredAt, decoded.OccurredAt)
	assert.Equal(t, in, out)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	var out roundPayload
	_, err := Decode([]byte("not msgpack"), &out)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var nop Nop
	require.NoError(t, nop.SendMessage(context.Background(), EventMatchReported, roundPayload{}))

	_, raw, err := Encode(EventMatchReported, roundPayload{Number: 7})
	require.NoError(t, err)
	var out roundPayload
	require.NoError(t, nop.ProcessMessage(raw, &out))
	assert.Equal(t, 7, out.Number)
}
