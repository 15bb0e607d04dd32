package engine_test

import (
	"testing"

	"github.com/neetosena/monster-game/internal/engine"
)

func hasMove(moves []engine.Cell, row, col int) bool {
	for _, m := range moves {
		if m.Row == row && m.Col == col {
			return true
		}
	}
	return false
}

func TestSlideBlockedByOpponent(t *testing.T) {
	b := engine.NewBoard(10)
	b.Place(engine.Cell{Row: 5, Col: 5}, engine.Creature{Owner: 1, Kind: engine.KindVampire})
	b.Place(engine.Cell{Row: 5, Col: 8}, engine.Creature{Owner: 2, Kind: engine.KindGhost})

	moves := engine.LegalMoves(b, 1, engine.Cell{Row: 5, Col: 5})

	if !hasMove(moves, 5, 6) || !hasMove(moves, 5, 7) {
		t.Error("cells before the opponent should be legal")
	}
	if hasMove(moves, 5, 8) {
		t.Error("the opponent's cell must not be a destination")
	}
	if hasMove(moves, 5, 9) {
		t.Error("scanning must halt beyond an opponent")
	}
}

func TestSlideJumpsOverOwnCreature(t *testing.T) {
	b := engine.NewBoard(10)
	b.Place(engine.Cell{Row: 5, Col: 5}, engine.Creature{Owner: 1, Kind: engine.KindVampire})
	b.Place(engine.Cell{Row: 5, Col: 6}, engine.Creature{Owner: 1, Kind: engine.KindWerewolf})

	moves := engine.LegalMoves(b, 1, engine.Cell{Row: 5, Col: 5})

	if hasMove(moves, 5, 6) {
		t.Error("an occupied cell is never a destination")
	}
	if !hasMove(moves, 5, 7) {
		t.Error("own creature should be passable, (5,7) must be legal")
	}
	if !hasMove(moves, 5, 9) {
		t.Error("slide should continue to the edge past own creature")
	}
}

func TestDiagonalCappedAtTwo(t *testing.T) {
	b := engine.NewBoard(10)
	b.Place(engine.Cell{Row: 5, Col: 5}, engine.Creature{Owner: 1, Kind: engine.KindGhost})

	moves := engine.LegalMoves(b, 1, engine.Cell{Row: 5, Col: 5})

	if !hasMove(moves, 4, 4) || !hasMove(moves, 3, 3) {
		t.Error("diagonal steps of 1 and 2 should be legal")
	}
	if hasMove(moves, 2, 2) {
		t.Error("diagonal step of 3 must not be legal")
	}
}

func TestDiagonalJumpsOverOwnCreature(t *testing.T) {
	b := engine.NewBoard(10)
	b.Place(engine.Cell{Row: 5, Col: 5}, engine.Creature{Owner: 1, Kind: engine.KindGhost})
	b.Place(engine.Cell{Row: 4, Col: 4}, engine.Creature{Owner: 1, Kind: engine.KindGhost})

	moves := engine.LegalMoves(b, 1, engine.Cell{Row: 5, Col: 5})
	if !hasMove(moves, 3, 3) {
		t.Error("(3,3) should be reachable over own creature at (4,4)")
	}
}

func TestDiagonalBlockedByOpponent(t *testing.T) {
	b := engine.NewBoard(10)
	b.Place(engine.Cell{Row: 5, Col: 5}, engine.Creature{Owner: 1, Kind: engine.KindGhost})
	b.Place(engine.Cell{Row: 4, Col: 4}, engine.Creature{Owner: 2, Kind: engine.KindGhost})

	moves := engine.LegalMoves(b, 1, engine.Cell{Row: 5, Col: 5})
	if hasMove(moves, 4, 4) || hasMove(moves, 3, 3) {
		t.Error("opponent on the diagonal must block both steps")
	}
}

func TestMovesTruncatedAtEdges(t *testing.T) {
	b := engine.NewBoard(10)
	b.Place(engine.Cell{Row: 0, Col: 0}, engine.Creature{Owner: 1, Kind: engine.KindVampire})

	moves := engine.LegalMoves(b, 1, engine.Cell{Row: 0, Col: 0})

	// right 9 + down 9 + one diagonal of 2
	if len(moves) != 20 {
		t.Errorf("corner creature: got %d moves, want 20", len(moves))
	}
	if !hasMove(moves, 2, 2) || !hasMove(moves, 1, 1) {
		t.Error("down-right diagonal should be legal from the corner")
	}
}

func TestOpenBoardMoveCount(t *testing.T) {
	b := engine.NewBoard(10)
	b.Place(engine.Cell{Row: 5, Col: 5}, engine.Creature{Owner: 1, Kind: engine.KindWerewolf})

	moves := engine.LegalMoves(b, 1, engine.Cell{Row: 5, Col: 5})

	// orthogonal 5+4+5+4 plus 2 per diagonal
	if len(moves) != 26 {
		t.Errorf("open board: got %d moves, want 26", len(moves))
	}
}

func TestNoMovesForForeignOrEmptyCell(t *testing.T) {
	b := engine.NewBoard(10)
	b.Place(engine.Cell{Row: 5, Col: 5}, engine.Creature{Owner: 2, Kind: engine.KindVampire})

	if moves := engine.LegalMoves(b, 1, engine.Cell{Row: 5, Col: 5}); moves != nil {
		t.Errorf("opponent's creature: got %v, want nil", moves)
	}
	if moves := engine.LegalMoves(b, 1, engine.Cell{Row: 0, Col: 0}); moves != nil {
		t.Errorf("empty cell: got %v, want nil", moves)
	}
}
