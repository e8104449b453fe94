package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateSeats_EmptyFixture(t *testing.T) {
	alloc, err := AllocateSeats(50.0, nil, 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, alloc.SeatNos)
	assert.Equal(t, 150.0, alloc.TotalAmount)
}

func TestAllocateSeats_ContinuesFromHighestSeat(t *testing.T) {
	alloc, err := AllocateSeats(25.0, []string{"1", "2", "3", "4"}, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"5", "6"}, alloc.SeatNos)
	assert.Equal(t, 50.0, alloc.TotalAmount)
}

func TestAllocateSeats_UnorderedBookedSeats(t *testing.T) {
	alloc, err := AllocateSeats(10.0, []string{"3", "7", "1"}, 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"8"}, alloc.SeatNos)
}

func TestAllocateSeats_GapsAreNotReused(t *testing.T) {
	// Seats 1-4 were cancelled and freed; only seat 99 remains active.
	// Allocation continues past the highest active seat.
	alloc, err := AllocateSeats(20.0, []string{"99"}, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"100", "101"}, alloc.SeatNos)
	assert.Equal(t, 40.0, alloc.TotalAmount)
}

func TestAllocateSeats_SingleSeat(t *testing.T) {
	alloc, err := AllocateSeats(99.99, []string{"10"}, 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"11"}, alloc.SeatNos)
	assert.InDelta(t, 99.99, alloc.TotalAmount, 0.0001)
}

func TestAllocateSeats_InvalidSeatNumber(t *testing.T) {
	alloc, err := AllocateSeats(10.0, []string{"1", "A12"}, 1)

	assert.Error(t, err)
	assert.Nil(t, alloc)
	assert.Contains(t, err.Error(), "A12")
}

func TestAllocateSeats_NonPositiveCount(t *testing.T) {
	alloc, err := AllocateSeats(10.0, nil, 0)
	assert.Error(t, err)
	assert.Nil(t, alloc)

	alloc, err = AllocateSeats(10.0, nil, -1)
	assert.Error(t, err)
	assert.Nil(t, alloc)
}
