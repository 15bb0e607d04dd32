package lobby

import (
	"errors"
	"sync"
)

// ErrFull is returned when all seats are taken.
var ErrFull = errors.New("all seats are taken")

// Registry hands out the numbered player seats. A connection claims the
// lowest free seat on accept and releases it on disconnect; a claim
// with every seat occupied fails with ErrFull.
type Registry struct {
	mu    sync.Mutex
	max   int
	seats map[int]string // seat number -> connection ID
}

func NewRegistry(maxSeats int) *Registry {
	return &Registry{
		max:   maxSeats,
		seats: make(map[int]string),
	}
}

// Claim reserves the lowest free seat for the given connection.
func (r *Registry) Claim(connID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for seat := 1; seat <= r.max; seat++ {
		if _, taken := r.seats[seat]; !taken {
			r.seats[seat] = connID
			return seat, nil
		}
	}
	return 0, ErrFull
}

// Release frees a seat. Releasing a free seat is a no-op.
func (r *Registry) Release(seat int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.seats, seat)
}

// Occupied returns the number of taken seats.
func (r *Registry) Occupied() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seats)
}
