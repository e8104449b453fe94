package orders

import (
	"fmt"
	"strconv"
)

// Allocation is the result of assigning seats to a new order
type Allocation struct {
	SeatNos     []string
	TotalAmount float64
}

// AllocateSeats assigns the next count seat numbers for a fixture and computes
// the total amount due. bookedSeatNos holds the seat numbers of every ticket
// belonging to an active order for the fixture; the new seats continue from
// the highest number already taken. Seat numbers freed by cancellations are
// never reissued.
//
// A seat number that does not parse as an integer indicates corrupted ticket
// data and fails the allocation.
func AllocateSeats(pricePerTicket float64, bookedSeatNos []string, count int) (*Allocation, error) {
	if count <= 0 {
		return nil, fmt.Errorf("ticket count must be positive, got %d", count)
	}

	offset := 0
	for _, seatNo := range bookedSeatNos {
		n, err := strconv.Atoi(seatNo)
		if err != nil {
			return nil, fmt.Errorf("invalid seat number %q: %w", seatNo, err)
		}
		if n > offset {
			offset = n
		}
	}

	seats := make([]string, count)
	for i := 0; i < count; i++ {
		seats[i] = strconv.Itoa(offset + i + 1)
	}

	return &Allocation{
		SeatNos:     seats,
		TotalAmount: pricePerTicket * float64(count),
	}, nil
}
