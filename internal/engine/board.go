package engine

// Cell is a board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Creature is a piece on the board, owned by one player.
type Creature struct {
	Owner PlayerID     `json:"playerId"`
	Kind  CreatureKind `json:"kind"`
}

// Board owns the occupancy grid. It enforces only the one-creature-per-cell
// invariant; all move and placement legality is decided by callers.
type Board struct {
	size  int
	cells map[Cell]Creature
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make(map[Cell]Creature),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// Get returns the creature at c, if any.
func (b *Board) Get(c Cell) (Creature, bool) {
	cr, ok := b.cells[c]
	return cr, ok
}

// Place puts a creature on an empty cell.
func (b *Board) Place(c Cell, cr Creature) error {
	if _, occupied := b.cells[c]; occupied {
		return ErrCellOccupied
	}
	b.cells[c] = cr
	return nil
}

// Remove clears a cell. Removing an empty cell is a no-op.
func (b *Board) Remove(c Cell) {
	delete(b.cells, c)
}

// Move relocates the creature at from to the empty cell to.
func (b *Board) Move(from, to Cell) error {
	cr, ok := b.cells[from]
	if !ok {
		return ErrNoCreatureAtSource
	}
	if _, occupied := b.cells[to]; occupied {
		return ErrCellOccupied
	}
	delete(b.cells, from)
	b.cells[to] = cr
	return nil
}

// Count returns how many creatures the given player has on the board.
func (b *Board) Count(owner PlayerID) int {
	n := 0
	for _, cr := range b.cells {
		if cr.Owner == owner {
			n++
		}
	}
	return n
}

// RemoveAll clears every creature owned by the given player and returns
// how many were removed.
func (b *Board) RemoveAll(owner PlayerID) int {
	n := 0
	for c, cr := range b.cells {
		if cr.Owner == owner {
			delete(b.cells, c)
			n++
		}
	}
	return n
}

// Cells returns a copy of the occupancy map.
func (b *Board) Cells() map[Cell]Creature {
	out := make(map[Cell]Creature, len(b.cells))
	for c, cr := range b.cells {
		out[c] = cr
	}
	return out
}

func (b *Board) clear() {
	b.cells = make(map[Cell]Creature)
}
