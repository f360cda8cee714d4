package request

import (
	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityQuery struct {
	At           string `form:"at" binding:"required"`
	Tolerance    *int   `form:"tolerance"`
	RestaurantID string `form:"restaurantId" binding:"omitempty,uuid"`
}

func (q AvailabilityQuery) ToQuery(mode booking.WindowMode) queries.AvailabilityRequest {
	req := queries.AvailabilityRequest{
		At:           q.At,
		ToleranceMin: q.Tolerance,
		Mode:         mode,
	}
	req.RestaurantID = optionalID(q.RestaurantID)
	return req
}

func optionalID(s string) *uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

type StatsQuery struct {
	Date string `form:"date"`
}
