//go:build unit

package booking_test

import (
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/tests/common/builder"

	"github.com/google/uuid"
)

func fixedClock() clock.Clock {
	return clock.NewMockClock(builder.FixedNow)
}

func ptrID(id uuid.UUID) *uuid.UUID {
	return &id
}
