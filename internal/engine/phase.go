package engine

// GamePhase represents the current phase of the game state machine.
type GamePhase int

const (
	PhasePlacementSimultaneous GamePhase = iota // round 1: all active players place concurrently
	PhasePlacementSequential                    // rounds >= 2: last round's losers place in queue order
	PhaseMovement                               // rounds >= 2: non-losers move in queue order
	PhaseResolution                             // resolving the round's claims
	PhaseGameOver                               // game finished
)

var phaseNames = map[GamePhase]string{
	PhasePlacementSimultaneous: "PlacementSimultaneous",
	PhasePlacementSequential:   "PlacementSequential",
	PhaseMovement:              "Movement",
	PhaseResolution:            "Resolution",
	PhaseGameOver:              "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
