package engine

// ActionType identifies player actions sent to Game.Apply. The names
// match the wire message types.
type ActionType string

const (
	ActionChooseCreature   ActionType = "chooseCreature"
	ActionDeclarePlacement ActionType = "declarePlacement"
	ActionMoveCreature     ActionType = "moveCreature"
	ActionPlaceNewCreature ActionType = "placeNewCreature"
	// Disconnects are routed through Apply like any other action so
	// they cannot race with a move being processed.
	ActionDisconnect ActionType = "disconnect"
)

// Action is a player's action input.
type Action struct {
	Type ActionType `json:"type"`
	// chooseCreature, declarePlacement, placeNewCreature
	Kind CreatureKind `json:"kind,omitempty"`
	// declarePlacement, placeNewCreature
	Row int `json:"row,omitempty"`
	Col int `json:"col,omitempty"`
	// moveCreature
	FromRow int `json:"fromRow,omitempty"`
	FromCol int `json:"fromCol,omitempty"`
	ToRow   int `json:"toRow,omitempty"`
	ToCol   int `json:"toCol,omitempty"`
}

// EventType identifies events emitted by the engine. The names match
// the outbound wire message types.
type EventType string

const (
	EventPhaseUpdate      EventType = "phaseUpdate"
	EventScoreUpdate      EventType = "scoreUpdate"
	EventPlayerEliminated EventType = "playerEliminated"
	EventGameWon          EventType = "gameWon"
	EventGameTied         EventType = "gameTied"
	EventCreaturesChosen  EventType = "creaturesChosen"
)

// Event is emitted by the engine after state changes and broadcast to
// all connected players.
type Event struct {
	Type   EventType   `json:"type"`
	Player PlayerID    `json:"player,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}
