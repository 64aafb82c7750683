package admin_stats

import (
	"github.com/salonplein/booking-platform/internal/service/stats"
)

// CategoryRevenueResponse is the revenue of one service category.
type CategoryRevenueResponse struct {
	Category     string `json:"category"`
	Bookings     int64  `json:"bookings"`
	RevenueCents int64  `json:"revenueCents"`
}

// Response is the platform statistics reply.
type Response struct {
	Users             int64                     `json:"users"`
	SalonsPending     int64                     `json:"salonsPending"`
	SalonsActive      int64                     `json:"salonsActive"`
	SalonsRejected    int64                     `json:"salonsRejected"`
	BookingsTotal     int64                     `json:"bookingsTotal"`
	BookingsCancelled int64                     `json:"bookingsCancelled"`
	RevenueByCategory []CategoryRevenueResponse `json:"revenueByCategory"`
}

// FromService maps the statistics to the API response.
func FromService(s *stats.PlatformStats) *Response {
	revenue := make([]CategoryRevenueResponse, 0, len(s.RevenueByCategory))
	for _, r := range s.RevenueByCategory {
		revenue = append(revenue, CategoryRevenueResponse{
			Category:     r.Category,
			Bookings:     r.Bookings,
			RevenueCents: r.RevenueCents,
		})
	}

	return &Response{
		Users:             s.Users,
		SalonsPending:     s.SalonsPending,
		SalonsActive:      s.SalonsActive,
		SalonsRejected:    s.SalonsRejected,
		BookingsTotal:     s.BookingsTotal,
		BookingsCancelled: s.BookingsCancelled,
		RevenueByCategory: revenue,
	}
}
