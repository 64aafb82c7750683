package manage_hours

import (
	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/internal/service/schedule"
	"github.com/salonplein/booking-platform/pkg/types"
)

// IntervalRequest is one working interval, times as "HH:MM".
type IntervalRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SetRequest is the JSON body of PUT /staff/{staffId}/hours. It replaces
// every interval of the given weekday; an empty list clears the day.
type SetRequest struct {
	// Weekday follows 0=Sunday .. 6=Saturday.
	Weekday   int               `json:"weekday"`
	Intervals []IntervalRequest `json:"intervals"`
}

// ToServiceIntervals maps the API intervals to the schedule request.
func (r *SetRequest) ToServiceIntervals() []schedule.HourInterval {
	out := make([]schedule.HourInterval, 0, len(r.Intervals))
	for _, iv := range r.Intervals {
		out = append(out, schedule.HourInterval{
			StartTime: types.TimeString(iv.StartTime),
			EndTime:   types.TimeString(iv.EndTime),
		})
	}
	return out
}

// HourResponse is one stored opening interval.
type HourResponse struct {
	ID        string `json:"id"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Response is the opening hours reply.
type Response struct {
	Hours []HourResponse `json:"hours"`
}

// FromDomain maps the opening hours to the API response.
func FromDomain(hours []*domain.OpeningHour) *Response {
	out := make([]HourResponse, 0, len(hours))
	for _, hr := range hours {
		out = append(out, HourResponse{
			ID:        hr.ID.String(),
			Weekday:   hr.Weekday,
			StartTime: string(hr.StartTime),
			EndTime:   string(hr.EndTime),
		})
	}
	return &Response{Hours: out}
}
