package engine

// PlayerID is a seat number in 1..MaxPlayers.
type PlayerID int

// MaxPlayers is the room capacity.
const MaxPlayers = 4

// Player holds one seat's game state.
type Player struct {
	ID         PlayerID `json:"id"`
	Score      int      `json:"score"`
	Lost       int      `json:"lost"` // cumulative creatures lost
	Eliminated bool     `json:"eliminated"`
	Connected  bool     `json:"connected"`

	// Staged by chooseCreature, consumed by the next placement.
	ChosenKind CreatureKind `json:"-"`
}

func NewPlayer(id PlayerID) *Player {
	return &Player{ID: id, Connected: true}
}

// Active reports whether the player is connected and not eliminated.
func (p *Player) Active() bool {
	return p.Connected && !p.Eliminated
}

// OnHomeEdge reports whether c lies on the edge owned by player id:
// player 1 owns row 0, player 2 col 0, player 3 the last row and
// player 4 the last column.
func OnHomeEdge(id PlayerID, c Cell, size int) bool {
	switch id {
	case 1:
		return c.Row == 0
	case 2:
		return c.Col == 0
	case 3:
		return c.Row == size-1
	case 4:
		return c.Col == size-1
	}
	return false
}
