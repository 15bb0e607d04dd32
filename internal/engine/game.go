package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var (
	ErrWrongPhase         = errors.New("wrong phase for this action")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrCellOccupied       = errors.New("cell already occupied")
	ErrInvalidEdge        = errors.New("placement must be on your own edge")
	ErrIllegalMove        = errors.New("destination is not a legal move")
	ErrNoCreatureAtSource = errors.New("no creature of yours at source cell")
	ErrRoomFull           = errors.New("room is full")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrInvalidAction      = errors.New("invalid action")
)

// RoundRecord captures the outcome of one resolved round.
type RoundRecord struct {
	Round     int     `json:"round"`
	Claims    []Claim `json:"claims"`
	Survivors []Claim `json:"survivors"`
}

// Game holds the entire authoritative game state. It is not safe for
// concurrent use; the server funnels every action through one goroutine.
type Game struct {
	Players map[PlayerID]*Player `json:"players"`
	Board   *Board               `json:"-"`
	Config  GameConfig           `json:"-"`

	Phase GamePhase `json:"phase"`
	Round int       `json:"round"`

	// Queue holds the players still to act in the current sequential
	// sub-phase, consumed from the front. NextMovers holds the movement
	// queue while losers are placing.
	Queue      []PlayerID `json:"queue"`
	NextMovers []PlayerID `json:"-"`

	// Claims accumulated this round, resolved at the round boundary.
	Claims  []Claim       `json:"-"`
	History []RoundRecord `json:"-"`

	placed  map[PlayerID]bool // round-1 simultaneous submissions
	shuffle func([]PlayerID)
}

// NewGame creates a game awaiting round-1 simultaneous placement.
func NewGame(config GameConfig) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}
	return &Game{
		Players: make(map[PlayerID]*Player),
		Board:   NewBoard(config.GridSize),
		Config:  config,
		Phase:   PhasePlacementSimultaneous,
		Round:   1,
		placed:  make(map[PlayerID]bool),
		shuffle: func(ids []PlayerID) {
			rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		},
	}, nil
}

// AddPlayer seats a new player under the given identity.
func (g *Game) AddPlayer(id PlayerID) error {
	if id < 1 || id > MaxPlayers {
		return fmt.Errorf("seat %d out of range: %w", id, ErrPlayerNotFound)
	}
	if _, taken := g.Players[id]; taken {
		return fmt.Errorf("seat %d already taken", id)
	}
	if len(g.Players) >= MaxPlayers {
		return ErrRoomFull
	}
	g.Players[id] = NewPlayer(id)
	return nil
}

// CurrentTurn returns the player whose action is expected, or 0 when no
// single player holds the turn (simultaneous placement, game over).
func (g *Game) CurrentTurn() PlayerID {
	if len(g.Queue) > 0 && (g.Phase == PhasePlacementSequential || g.Phase == PhaseMovement) {
		return g.Queue[0]
	}
	return 0
}

// Apply is the single entry point for player actions. A rejected action
// returns a taxonomy error and leaves all state untouched.
func (g *Game) Apply(id PlayerID, action Action) ([]Event, error) {
	p, ok := g.Players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	if action.Type == ActionDisconnect {
		return g.applyDisconnect(id), nil
	}
	if g.Phase == PhaseGameOver {
		return nil, ErrWrongPhase
	}
	if !p.Active() {
		return nil, ErrNotYourTurn
	}

	switch action.Type {
	case ActionChooseCreature:
		return g.applyChooseCreature(p, action)
	case ActionDeclarePlacement:
		return g.applyDeclarePlacement(p, action)
	case ActionMoveCreature:
		return g.applyMoveCreature(p, action)
	case ActionPlaceNewCreature:
		return g.applyPlaceNewCreature(p, action)
	default:
		return nil, ErrInvalidAction
	}
}

func (g *Game) applyChooseCreature(p *Player, action Action) ([]Event, error) {
	switch g.Phase {
	case PhasePlacementSimultaneous:
		if g.placed[p.ID] {
			return nil, ErrNotYourTurn
		}
	case PhasePlacementSequential:
		if g.CurrentTurn() != p.ID {
			return nil, ErrNotYourTurn
		}
	default:
		return nil, ErrWrongPhase
	}
	if action.Kind == 0 {
		return nil, ErrInvalidAction
	}
	p.ChosenKind = action.Kind

	if g.Phase == PhasePlacementSimultaneous && g.allActiveChosen() {
		return []Event{{Type: EventCreaturesChosen, Data: g.chosenKinds()}}, nil
	}
	return nil, nil
}

func (g *Game) applyDeclarePlacement(p *Player, action Action) ([]Event, error) {
	cell := Cell{Row: action.Row, Col: action.Col}

	switch g.Phase {
	case PhasePlacementSimultaneous:
		if g.placed[p.ID] {
			return nil, ErrNotYourTurn
		}
		kind, err := placementKind(p, action)
		if err != nil {
			return nil, err
		}
		if err := g.validatePlacement(p.ID, cell); err != nil {
			return nil, err
		}
		g.Claims = append(g.Claims, Claim{Player: p.ID, Cell: cell, Kind: kind})
		g.placed[p.ID] = true
		p.ChosenKind = 0
		if g.allActivePlaced() {
			return g.resolveRound(), nil
		}
		return nil, nil

	case PhasePlacementSequential:
		if g.CurrentTurn() != p.ID {
			return nil, ErrNotYourTurn
		}
		kind, err := placementKind(p, action)
		if err != nil {
			return nil, err
		}
		if err := g.validatePlacement(p.ID, cell); err != nil {
			return nil, err
		}
		g.Claims = append(g.Claims, Claim{Player: p.ID, Cell: cell, Kind: kind})
		p.ChosenKind = 0
		return g.advanceQueue(), nil

	default:
		return nil, ErrWrongPhase
	}
}

func (g *Game) applyMoveCreature(p *Player, action Action) ([]Event, error) {
	if g.Phase != PhaseMovement {
		return nil, ErrWrongPhase
	}
	if g.CurrentTurn() != p.ID {
		return nil, ErrNotYourTurn
	}

	from := Cell{Row: action.FromRow, Col: action.FromCol}
	to := Cell{Row: action.ToRow, Col: action.ToCol}
	cr, ok := g.Board.Get(from)
	if !ok || cr.Owner != p.ID {
		return nil, ErrNoCreatureAtSource
	}
	if !containsCell(LegalMoves(g.Board, p.ID, from), to) {
		return nil, ErrIllegalMove
	}

	// The creature leaves the at-rest board and becomes a claim on its
	// destination, contested at round resolution.
	g.Board.Remove(from)
	g.Claims = append(g.Claims, Claim{Player: p.ID, Cell: to, Kind: cr.Kind})
	return g.advanceQueue(), nil
}

func (g *Game) applyPlaceNewCreature(p *Player, action Action) ([]Event, error) {
	if g.Phase != PhaseMovement {
		return nil, ErrWrongPhase
	}
	if g.CurrentTurn() != p.ID {
		return nil, ErrNotYourTurn
	}
	kind, err := placementKind(p, action)
	if err != nil {
		return nil, err
	}
	cell := Cell{Row: action.Row, Col: action.Col}
	if err := g.validatePlacement(p.ID, cell); err != nil {
		return nil, err
	}
	g.Claims = append(g.Claims, Claim{Player: p.ID, Cell: cell, Kind: kind})
	p.ChosenKind = 0
	return g.advanceQueue(), nil
}

// applyDisconnect destroys the player's seat and advances the game
// exactly as a completed no-op turn would.
func (g *Game) applyDisconnect(id PlayerID) []Event {
	wasFront := g.CurrentTurn() == id

	delete(g.Players, id)
	g.Board.RemoveAll(id)
	g.Claims = dropClaims(g.Claims, id)
	delete(g.placed, id)
	g.Queue = dropID(g.Queue, id)
	g.NextMovers = dropID(g.NextMovers, id)

	if g.Phase == PhaseGameOver {
		return nil
	}
	if events, over := g.checkSurvivorWin(); over {
		return events
	}

	switch g.Phase {
	case PhasePlacementSimultaneous:
		if g.allActivePlaced() {
			return g.resolveRound()
		}
	case PhasePlacementSequential, PhaseMovement:
		if wasFront || len(g.Queue) == 0 {
			return g.afterQueueStep()
		}
	}
	return nil
}

// validatePlacement checks a new-creature claim: on the board, on the
// placing player's own edge, and on a cell empty at rest.
func (g *Game) validatePlacement(id PlayerID, cell Cell) error {
	if !g.Board.InBounds(cell) || !OnHomeEdge(id, cell, g.Board.Size()) {
		return ErrInvalidEdge
	}
	if _, occupied := g.Board.Get(cell); occupied {
		return ErrCellOccupied
	}
	return nil
}

func (g *Game) advanceQueue() []Event {
	g.Queue = g.Queue[1:]
	return g.afterQueueStep()
}

// afterQueueStep notifies the new front player or, when the queue has
// drained, advances to the next sub-phase or resolution.
func (g *Game) afterQueueStep() []Event {
	if len(g.Queue) > 0 {
		return []Event{g.phaseEvent(fmt.Sprintf("player %d to act", g.Queue[0]))}
	}

	switch g.Phase {
	case PhasePlacementSequential:
		if len(g.NextMovers) > 0 {
			g.Phase = PhaseMovement
			g.Queue = g.NextMovers
			g.NextMovers = nil
			return []Event{g.phaseEvent("movement begins")}
		}
		return g.resolveRound()
	case PhaseMovement:
		return g.resolveRound()
	}
	return nil
}

// resolveRound is the atomic round boundary: resolve claims, commit
// survivors to the board, update losses, eliminations and scores, then
// either terminate or start the next round.
func (g *Game) resolveRound() []Event {
	g.Phase = PhaseResolution
	events := []Event{g.phaseEvent("resolving round")}

	before := make(map[PlayerID]int)
	for id := range g.Players {
		before[id] = g.Board.Count(id)
	}
	for _, c := range g.Claims {
		before[c.Player]++
	}

	survivors := ResolveClaims(g.Claims)
	for _, s := range survivors {
		_ = g.Board.Place(s.Cell, Creature{Owner: s.Player, Kind: s.Kind})
	}
	g.History = append(g.History, RoundRecord{Round: g.Round, Claims: g.Claims, Survivors: survivors})
	g.Claims = nil
	g.placed = make(map[PlayerID]bool)

	for _, id := range g.sortedPlayerIDs() {
		p := g.Players[id]
		count := g.Board.Count(id)
		if lost := before[id] - count; lost > 0 {
			p.Lost += lost
		}
		if !p.Eliminated && p.Lost >= g.Config.EliminationThreshold {
			p.Eliminated = true
			g.Board.RemoveAll(id)
			events = append(events, Event{
				Type:   EventPlayerEliminated,
				Player: id,
				Data: map[string]interface{}{
					"playerId": int(id),
					"message":  fmt.Sprintf("player %d lost %d creatures and is eliminated", id, p.Lost),
				},
			})
			continue
		}
		if !p.Eliminated {
			p.Score += count
		}
	}
	events = append(events, Event{Type: EventScoreUpdate, Data: g.Scores()})

	if ev, over := g.checkSurvivorWin(); over {
		return append(events, ev...)
	}
	if g.Round >= g.Config.MaxRounds {
		return append(events, g.endByMaxRounds()...)
	}

	g.Round++
	return append(events, g.startRound()...)
}

// startRound builds the shuffled loser and non-loser queues for a round
// past the first and enters the appropriate sub-phase.
func (g *Game) startRound() []Event {
	var losers, movers []PlayerID
	for _, id := range g.activePlayers() {
		if g.Board.Count(id) == 0 {
			losers = append(losers, id)
		} else {
			movers = append(movers, id)
		}
	}
	g.shuffle(losers)
	g.shuffle(movers)

	if len(losers) > 0 {
		g.Phase = PhasePlacementSequential
		g.Queue = losers
		g.NextMovers = movers
		return []Event{g.phaseEvent("losers place new creatures")}
	}
	if len(movers) > 0 {
		g.Phase = PhaseMovement
		g.Queue = movers
		g.NextMovers = nil
		return []Event{g.phaseEvent("movement begins")}
	}
	return nil
}

// checkSurvivorWin ends the game once the active-player count is down
// to one. It never fires before the first claim of round 1, so a lone
// early joiner is not declared winner while seats are still filling.
func (g *Game) checkSurvivorWin() ([]Event, bool) {
	if !g.started() {
		return nil, false
	}
	actives := g.activePlayers()
	if len(actives) > 1 {
		return nil, false
	}

	g.Phase = PhaseGameOver
	g.Queue = nil
	g.NextMovers = nil
	if len(actives) == 1 {
		winner := actives[0]
		return []Event{
			{
				Type:   EventGameWon,
				Player: winner,
				Data: map[string]interface{}{
					"playerId": int(winner),
					"message":  fmt.Sprintf("player %d is the last one standing", winner),
				},
			},
			g.phaseEvent("game over"),
		}, true
	}
	return []Event{g.phaseEvent("game over")}, true
}

// endByMaxRounds ends the game on the round limit: single top score
// wins, equal top scores tie with no single winner.
func (g *Game) endByMaxRounds() []Event {
	g.Phase = PhaseGameOver
	g.Queue = nil
	g.NextMovers = nil

	best := -1
	var winners []PlayerID
	for _, id := range g.activePlayers() {
		switch s := g.Players[id].Score; {
		case s > best:
			best = s
			winners = []PlayerID{id}
		case s == best:
			winners = append(winners, id)
		}
	}

	switch len(winners) {
	case 0:
		return []Event{g.phaseEvent("game over")}
	case 1:
		return []Event{
			{
				Type:   EventGameWon,
				Player: winners[0],
				Data: map[string]interface{}{
					"playerId": int(winners[0]),
					"message":  fmt.Sprintf("player %d wins with %d points", winners[0], best),
				},
			},
			g.phaseEvent("game over"),
		}
	default:
		ids := make([]int, len(winners))
		for i, id := range winners {
			ids[i] = int(id)
		}
		return []Event{
			{
				Type: EventGameTied,
				Data: map[string]interface{}{
					"playerIds": ids,
					"message":   fmt.Sprintf("game tied at %d points", best),
				},
			},
			g.phaseEvent("game over"),
		}
	}
}

// LegalMovesFrom answers a requestMoves query. Read-only.
func (g *Game) LegalMovesFrom(id PlayerID, from Cell) ([]Cell, error) {
	if _, ok := g.Players[id]; !ok {
		return nil, ErrPlayerNotFound
	}
	cr, ok := g.Board.Get(from)
	if !ok || cr.Owner != id {
		return nil, ErrNoCreatureAtSource
	}
	return LegalMoves(g.Board, id, from), nil
}

// BoardCell is one occupied cell in a broadcast snapshot.
type BoardCell struct {
	Row      int          `json:"row"`
	Col      int          `json:"col"`
	PlayerID PlayerID     `json:"playerId"`
	Kind     CreatureKind `json:"kind"`
}

// Snapshot returns the at-rest board contents in row-major order.
func (g *Game) Snapshot() []BoardCell {
	cells := g.Board.Cells()
	out := make([]BoardCell, 0, len(cells))
	for c, cr := range cells {
		out = append(out, BoardCell{Row: c.Row, Col: c.Col, PlayerID: cr.Owner, Kind: cr.Kind})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Scores returns every seated player's score.
func (g *Game) Scores() map[PlayerID]int {
	out := make(map[PlayerID]int, len(g.Players))
	for id, p := range g.Players {
		out[id] = p.Score
	}
	return out
}

// Reset clears the board, claims, history and per-player progress and
// re-enters round-1 simultaneous placement. Seats are kept.
func (g *Game) Reset() []Event {
	g.Board.clear()
	g.Claims = nil
	g.Queue = nil
	g.NextMovers = nil
	g.History = nil
	g.placed = make(map[PlayerID]bool)
	for _, p := range g.Players {
		p.Score = 0
		p.Lost = 0
		p.Eliminated = false
		p.ChosenKind = 0
	}
	g.Round = 1
	g.Phase = PhasePlacementSimultaneous
	return []Event{g.phaseEvent("new game")}
}

func (g *Game) phaseEvent(message string) Event {
	return Event{
		Type: EventPhaseUpdate,
		Data: map[string]interface{}{
			"phase":       g.Phase.String(),
			"round":       g.Round,
			"currentTurn": int(g.CurrentTurn()),
			"message":     message,
		},
	}
}

func (g *Game) started() bool {
	return g.Round > 1 || len(g.Claims) > 0 || len(g.placed) > 0 || len(g.History) > 0
}

// activePlayers returns connected, non-eliminated players in seat order.
func (g *Game) activePlayers() []PlayerID {
	var out []PlayerID
	for _, id := range g.sortedPlayerIDs() {
		if g.Players[id].Active() {
			out = append(out, id)
		}
	}
	return out
}

func (g *Game) sortedPlayerIDs() []PlayerID {
	out := make([]PlayerID, 0, len(g.Players))
	for id := range g.Players {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (g *Game) allActivePlaced() bool {
	actives := g.activePlayers()
	if len(actives) == 0 {
		return false
	}
	for _, id := range actives {
		if !g.placed[id] {
			return false
		}
	}
	return true
}

func (g *Game) allActiveChosen() bool {
	actives := g.activePlayers()
	if len(actives) == 0 {
		return false
	}
	for _, id := range actives {
		if g.Players[id].ChosenKind == 0 {
			return false
		}
	}
	return true
}

func (g *Game) chosenKinds() map[PlayerID]string {
	out := make(map[PlayerID]string)
	for id, p := range g.Players {
		if p.ChosenKind != 0 {
			out[id] = p.ChosenKind.String()
		}
	}
	return out
}

func placementKind(p *Player, action Action) (CreatureKind, error) {
	if action.Kind != 0 {
		return action.Kind, nil
	}
	if p.ChosenKind != 0 {
		return p.ChosenKind, nil
	}
	return 0, ErrInvalidAction
}

func containsCell(cells []Cell, c Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}

func dropID(ids []PlayerID, id PlayerID) []PlayerID {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

func dropClaims(claims []Claim, id PlayerID) []Claim {
	out := claims[:0]
	for _, c := range claims {
		if c.Player != id {
			out = append(out, c)
		}
	}
	return out
}
