package get_availability

import (
	"time"

	getAvailability "github.com/salonplein/booking-platform/internal/usecase/get_availability"
)

// SlotResponse is one bookable start time in the reply.
type SlotResponse struct {
	StaffID   string    `json:"staffId"`
	StaffName string    `json:"staffName"`
	StartAt   time.Time `json:"startAt"`
}

// Response is the availability reply.
type Response struct {
	Date            string         `json:"date"`
	SalonID         string         `json:"salonId"`
	ServiceID       string         `json:"serviceId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse maps the use case result to the API response.
func FromUseCaseResponse(res *getAvailability.Response) *Response {
	slots := make([]SlotResponse, 0, len(res.Slots))
	for _, s := range res.Slots {
		slots = append(slots, SlotResponse{
			StaffID:   s.StaffID.String(),
			StaffName: s.StaffName,
			StartAt:   s.StartAt,
		})
	}

	return &Response{
		Date:            res.Date.Format("2006-01-02"),
		SalonID:         res.SalonID.String(),
		ServiceID:       res.ServiceID.String(),
		DurationMinutes: res.DurationMinutes,
		Slots:           slots,
	}
}
