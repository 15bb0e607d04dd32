package lobby

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimHandsOutSeatsInOrder(t *testing.T) {
	r := NewRegistry(4)

	for want := 1; want <= 4; want++ {
		seat, err := r.Claim(fmt.Sprintf("conn-%d", want))
		require.NoError(t, err)
		assert.Equal(t, want, seat)
	}
	assert.Equal(t, 4, r.Occupied())

	_, err := r.Claim("conn-5")
	assert.ErrorIs(t, err, ErrFull)
}

func TestReleaseFreesTheLowestSeatFirst(t *testing.T) {
	r := NewRegistry(4)
	for i := 1; i <= 4; i++ {
		_, err := r.Claim(fmt.Sprintf("conn-%d", i))
		require.NoError(t, err)
	}

	r.Release(2)
	assert.Equal(t, 3, r.Occupied())

	seat, err := r.Claim("conn-late")
	require.NoError(t, err)
	assert.Equal(t, 2, seat, "a new claim takes the lowest freed seat")
}

func TestReleaseOfFreeSeatIsNoOp(t *testing.T) {
	r := NewRegistry(4)
	r.Release(3)
	assert.Equal(t, 0, r.Occupied())
}
