package response

import (
	"time"

	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type WindowResponse struct {
	Mode  string    `json:"mode"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	Window          WindowResponse     `json:"window"`
	Bookings        []*BookingResponse `json:"bookings"`
	AvailableTables []TableResponse    `json:"availableTables"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Window: WindowResponse{
			Mode:  v.Window.Mode,
			Start: v.Window.Start,
			End:   v.Window.End,
		},
		Bookings:        FromBookingViews(v.Bookings),
		AvailableTables: FromTableViews(v.AvailableTables),
	}
}

type BookedTableResponse struct {
	Table             TableResponse `json:"table"`
	BookingID         uuid.UUID     `json:"bookingId"`
	BookingTime       time.Time     `json:"bookingTime"`
	ReservationStatus string        `json:"reservationStatus"`
}

func FromBookedTableViews(vs []queries.BookedTableView) []BookedTableResponse {
	out := make([]BookedTableResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, BookedTableResponse{
			Table:             FromTableView(v.Table),
			BookingID:         v.BookingID,
			BookingTime:       v.BookingTime,
			ReservationStatus: v.ReservationStatus,
		})
	}
	return out
}

type TableCountResponse struct {
	Table TableResponse `json:"table"`
	Count int           `json:"count"`
}

type MonthCountResponse struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type RankedEntityResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Bookings int64     `json:"bookings"`
}

type DailyStatsResponse struct {
	Date                string                 `json:"date"`
	BookedTableSlots    int                    `json:"bookedTableSlots"`
	TableFrequencies    []TableCountResponse   `json:"tableFrequencies"`
	MostBookedTable     *TableCountResponse    `json:"mostBookedTable"`
	LeastBookedTable    *TableCountResponse    `json:"leastBookedTable"`
	TotalBookings       int64                  `json:"totalBookings"`
	BookingsByStatus    []StatusCountResponse  `json:"bookingsByStatus"`
	AssignedTableSlots  int64                  `json:"assignedTableSlots"`
	CancelledTableSlots int64                  `json:"cancelledTableSlots"`
	TotalCustomers      int64                  `json:"totalCustomers"`
	TotalRestaurants    int64                  `json:"totalRestaurants"`
	TotalTables         int64                  `json:"totalTables"`
	BookingsByMonth     []MonthCountResponse   `json:"bookingsByMonth"`
	TopCustomers        []RankedEntityResponse `json:"topCustomers"`
	TopRestaurants      []RankedEntityResponse `json:"topRestaurants"`
}

// FromDailyStatsView copies field by field by name; nil most/least stay nil
// and list fields are never null.
func FromDailyStatsView(v *queries.DailyStatsView) (*DailyStatsResponse, error) {
	resp := &DailyStatsResponse{}
	if err := copier.Copy(resp, v); err != nil {
		return nil, errs.Wrap(err, "failed to map daily stats")
	}
	if resp.TableFrequencies == nil {
		resp.TableFrequencies = []TableCountResponse{}
	}
	if resp.BookingsByStatus == nil {
		resp.BookingsByStatus = []StatusCountResponse{}
	}
	if resp.BookingsByMonth == nil {
		resp.BookingsByMonth = []MonthCountResponse{}
	}
	if resp.TopCustomers == nil {
		resp.TopCustomers = []RankedEntityResponse{}
	}
	if resp.TopRestaurants == nil {
		resp.TopRestaurants = []RankedEntityResponse{}
	}
	resp.MostBookedTable = tableCount(v.MostBookedTable)
	resp.LeastBookedTable = tableCount(v.LeastBookedTable)
	return resp, nil
}

func tableCount(v *queries.TableCountView) *TableCountResponse {
	if v == nil {
		return nil
	}
	return &TableCountResponse{Table: FromTableView(v.Table), Count: v.Count}
}
