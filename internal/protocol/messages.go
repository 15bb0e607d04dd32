package protocol

// Message types: Client → Server
const (
	MsgChooseCreature   = "chooseCreature"
	MsgDeclarePlacement = "declarePlacement"
	MsgRequestMoves     = "requestMoves"
	MsgMoveCreature     = "moveCreature"
	MsgPlaceNewCreature = "placeNewCreature"
)

// Message types: Server → Client
const (
	MsgAssignedIdentity = "assignedIdentity"
	MsgRoomFull         = "roomFull"
	MsgPhaseUpdate      = "phaseUpdate"
	MsgBoardSnapshot    = "boardSnapshot"
	MsgLegalMoves       = "legalMoves"
	MsgActionRejected   = "actionRejected"
	MsgScoreUpdate      = "scoreUpdate"
	MsgPlayerEliminated = "playerEliminated"
	MsgGameWon          = "gameWon"
	MsgGameTied         = "gameTied"
	MsgCreaturesChosen  = "creaturesChosen"
)

// ChooseCreatureMsg declares the intended kind for the next placement.
type ChooseCreatureMsg struct {
	Kind string `json:"kind"`
}

// PlacementMsg is the payload of declarePlacement and placeNewCreature.
type PlacementMsg struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Kind string `json:"kind,omitempty"`
}

// RequestMovesMsg asks for the legal destinations of one creature.
type RequestMovesMsg struct {
	FromRow int `json:"fromRow"`
	FromCol int `json:"fromCol"`
}

// MoveCreatureMsg executes a declared move.
type MoveCreatureMsg struct {
	FromRow int `json:"fromRow"`
	FromCol int `json:"fromCol"`
	ToRow   int `json:"toRow"`
	ToCol   int `json:"toCol"`
}

// AssignedIdentityMsg is sent once on connection acceptance.
type AssignedIdentityMsg struct {
	PlayerID int `json:"playerId"`
}

// MoveOption is one entry of a legalMoves response.
type MoveOption struct {
	FromRow int `json:"fromRow"`
	FromCol int `json:"fromCol"`
	ToRow   int `json:"toRow"`
	ToCol   int `json:"toCol"`
}

// ActionRejectedMsg is sent only to the offending actor.
type ActionRejectedMsg struct {
	Reason string `json:"reason"`
}
