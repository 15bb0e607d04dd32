package engine

// DiagonalRange caps how far a creature may step diagonally.
const DiagonalRange = 2

var (
	orthogonalDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// LegalMoves returns every destination the creature at from may reach:
// unbounded orthogonal slides plus diagonal steps of up to DiagonalRange.
// In both families the owner's own creatures are passable (scanning
// continues through them, they are never a stop) while an opponent's
// creature is a hard stop that is itself excluded. Occupied cells are
// never destinations; captures happen only through claim resolution.
func LegalMoves(b *Board, owner PlayerID, from Cell) []Cell {
	cr, ok := b.Get(from)
	if !ok || cr.Owner != owner {
		return nil
	}

	var out []Cell
	for _, d := range orthogonalDirs {
		out = append(out, scanRay(b, owner, from, d[0], d[1], b.Size())...)
	}
	for _, d := range diagonalDirs {
		out = append(out, scanRay(b, owner, from, d[0], d[1], DiagonalRange)...)
	}
	return out
}

func scanRay(b *Board, owner PlayerID, from Cell, dr, dc, limit int) []Cell {
	var out []Cell
	for i := 1; i <= limit; i++ {
		c := Cell{Row: from.Row + dr*i, Col: from.Col + dc*i}
		if !b.InBounds(c) {
			break
		}
		cr, occupied := b.Get(c)
		if !occupied {
			out = append(out, c)
			continue
		}
		if cr.Owner != owner {
			break
		}
		// own creature: jumpable, keep scanning
	}
	return out
}
