package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/neetosena/monster-game/internal/engine"
	"github.com/neetosena/monster-game/internal/lobby"
	"github.com/neetosena/monster-game/internal/protocol"
)

// Hub owns the game state and the set of WebSocket connections. All
// player actions, joins, disconnects and resets are serialized through
// its Run loop, so the engine is only ever touched by one goroutine.
type Hub struct {
	mu      sync.Mutex
	seats   *lobby.Registry
	game    *engine.Game
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	resets     chan struct{}
	quit       chan struct{}

	history []engine.RoundRecord // copy for HTTP reads
}

func NewHub(config engine.GameConfig) (*Hub, error) {
	game, err := engine.NewGame(config)
	if err != nil {
		return nil, err
	}
	return &Hub{
		seats:      lobby.NewRegistry(engine.MaxPlayers),
		game:       game,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		resets:     make(chan struct{}),
		quit:       make(chan struct{}),
	}, nil
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)
		case client := <-h.unregister:
			h.handleUnregister(client)
		case msg := <-h.incoming:
			h.handleMessage(msg)
		case <-h.resets:
			h.handleReset()
		case <-h.quit:
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.quit)
}

// handleRegister seats a new connection or refuses it with roomFull.
func (h *Hub) handleRegister(client *Client) {
	seat, err := h.seats.Claim(client.ConnID)
	if err != nil {
		log.Info().Str("conn", client.ConnID).Msg("room full, refusing connection")
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgRoomFull, nil))
		close(client.send)
		return
	}
	if err := h.game.AddPlayer(engine.PlayerID(seat)); err != nil {
		h.seats.Release(seat)
		log.Error().Err(err).Int("seat", seat).Msg("seat claim out of sync with game")
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgRoomFull, nil))
		close(client.send)
		return
	}

	client.Seat = seat
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	log.Info().Int("seat", seat).Str("conn", client.ConnID).Msg("player joined")
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgAssignedIdentity, protocol.AssignedIdentityMsg{PlayerID: seat}))
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgBoardSnapshot, h.game.Snapshot()))
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgPhaseUpdate, h.phasePayload(fmt.Sprintf("player %d joined", seat))))
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.mu.Unlock()

	if client.Seat == 0 {
		return
	}
	log.Info().Int("seat", client.Seat).Msg("player disconnected")
	h.seats.Release(client.Seat)

	// The disconnect flows through the same serialized action path as
	// any other action, advancing the queue like a completed no-op turn.
	events, err := h.game.Apply(engine.PlayerID(client.Seat), engine.Action{Type: engine.ActionDisconnect})
	if err != nil {
		log.Error().Err(err).Int("seat", client.Seat).Msg("disconnect apply failed")
		return
	}
	h.broadcastEvents(events)
	h.broadcastSnapshot()
	h.syncHistory()
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	client := msg.Client
	if client.Seat == 0 {
		h.sendRejected(client, "no seat assigned")
		return
	}
	id := engine.PlayerID(client.Seat)

	// requestMoves is a query: answered to the requester only, no state change.
	if msg.Envelope.Type == protocol.MsgRequestMoves {
		h.handleRequestMoves(client, id, msg.Envelope)
		return
	}

	action, err := parseAction(msg.Envelope)
	if err != nil {
		h.sendRejected(client, err.Error())
		return
	}

	events, err := h.game.Apply(id, action)
	if err != nil {
		h.sendRejected(client, err.Error())
		return
	}
	h.broadcastEvents(events)
	h.broadcastSnapshot()
	h.syncHistory()
}

func (h *Hub) handleRequestMoves(client *Client, id engine.PlayerID, env protocol.Envelope) {
	var req protocol.RequestMovesMsg
	if err := json.Unmarshal(env.Payload, &req); err != nil {
		h.sendRejected(client, "invalid requestMoves payload")
		return
	}
	from := engine.Cell{Row: req.FromRow, Col: req.FromCol}
	moves, err := h.game.LegalMovesFrom(id, from)
	if err != nil {
		h.sendRejected(client, err.Error())
		return
	}
	options := make([]protocol.MoveOption, len(moves))
	for i, to := range moves {
		options[i] = protocol.MoveOption{
			FromRow: from.Row,
			FromCol: from.Col,
			ToRow:   to.Row,
			ToCol:   to.Col,
		}
	}
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgLegalMoves, options))
}

func (h *Hub) handleReset() {
	log.Info().Msg("game reset")
	events := h.game.Reset()
	h.broadcastEvents(events)
	h.broadcastSnapshot()
	h.syncHistory()
}

// parseAction translates a wire envelope into an engine action.
func parseAction(env protocol.Envelope) (engine.Action, error) {
	switch env.Type {
	case protocol.MsgChooseCreature:
		var m protocol.ChooseCreatureMsg
		if err := json.Unmarshal(env.Payload, &m); err != nil {
			return engine.Action{}, fmt.Errorf("invalid chooseCreature payload")
		}
		kind, err := engine.ParseKind(m.Kind)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionChooseCreature, Kind: kind}, nil

	case protocol.MsgDeclarePlacement, protocol.MsgPlaceNewCreature:
		var m protocol.PlacementMsg
		if err := json.Unmarshal(env.Payload, &m); err != nil {
			return engine.Action{}, fmt.Errorf("invalid placement payload")
		}
		action := engine.Action{Type: engine.ActionDeclarePlacement, Row: m.Row, Col: m.Col}
		if env.Type == protocol.MsgPlaceNewCreature {
			action.Type = engine.ActionPlaceNewCreature
		}
		if m.Kind != "" {
			kind, err := engine.ParseKind(m.Kind)
			if err != nil {
				return engine.Action{}, err
			}
			action.Kind = kind
		}
		return action, nil

	case protocol.MsgMoveCreature:
		var m protocol.MoveCreatureMsg
		if err := json.Unmarshal(env.Payload, &m); err != nil {
			return engine.Action{}, fmt.Errorf("invalid moveCreature payload")
		}
		return engine.Action{
			Type:    engine.ActionMoveCreature,
			FromRow: m.FromRow,
			FromCol: m.FromCol,
			ToRow:   m.ToRow,
			ToCol:   m.ToCol,
		}, nil

	default:
		return engine.Action{}, fmt.Errorf("unknown message type %q", env.Type)
	}
}

// broadcastEvents fans engine events out to every connected client.
// Event types double as wire message types.
func (h *Hub) broadcastEvents(events []engine.Event) {
	for _, ev := range events {
		h.broadcastAll(protocol.MustEnvelope(string(ev.Type), ev.Data))
	}
}

func (h *Hub) broadcastSnapshot() {
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgBoardSnapshot, h.game.Snapshot()))
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		log.Error().Err(err).Str("type", env.Type).Msg("broadcast marshal error")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Warn().Int("seat", client.Seat).Msg("client buffer full")
		}
	}
}

// sendRejected reports a rejected action to the offending actor only.
func (h *Hub) sendRejected(client *Client, reason string) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgActionRejected, protocol.ActionRejectedMsg{Reason: reason}))
}

func (h *Hub) phasePayload(message string) map[string]interface{} {
	return map[string]interface{}{
		"phase":       h.game.Phase.String(),
		"round":       h.game.Round,
		"currentTurn": int(h.game.CurrentTurn()),
		"message":     message,
	}
}

// syncHistory copies the engine's round history for HTTP readers, which
// must never reach into live game state.
func (h *Hub) syncHistory() {
	snapshot := make([]engine.RoundRecord, len(h.game.History))
	copy(snapshot, h.game.History)
	h.mu.Lock()
	h.history = snapshot
	h.mu.Unlock()
}

// History returns the recorded rounds resolved so far.
func (h *Hub) History() []engine.RoundRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]engine.RoundRecord, len(h.history))
	copy(out, h.history)
	return out
}

// Reset requests a game reset through the serialized hub loop.
func (h *Hub) Reset() {
	h.resets <- struct{}{}
}
