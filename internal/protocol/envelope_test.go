package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelopeWrapsPayload(t *testing.T) {
	e, err := NewEnvelope(MsgMoveCreature, MoveCreatureMsg{
		FromRow: 4, FromCol: 4, ToRow: 4, ToCol: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, MsgMoveCreature, e.Type)
	assert.JSONEq(t, `{"fromRow":4,"fromCol":4,"toRow":4,"toCol":7}`, string(e.Payload))
}

func TestNewEnvelopeNilPayloadOmitted(t *testing.T) {
	e, err := NewEnvelope(MsgGameTied, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"gameTied"}`, string(raw))
}

func TestEnvelopeRoundTrip(t *testing.T) {
	raw := []byte(`{"type":"declarePlacement","payload":{"row":0,"col":3,"kind":"vampire"}}`)

	var e Envelope
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Equal(t, MsgDeclarePlacement, e.Type)

	var msg PlacementMsg
	require.NoError(t, json.Unmarshal(e.Payload, &msg))
	assert.Equal(t, 0, msg.Row)
	assert.Equal(t, 3, msg.Col)
	assert.Equal(t, "vampire", msg.Kind)
}
