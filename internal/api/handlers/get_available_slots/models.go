package get_available_slots

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	From string         `json:"from"`
	To   string         `json:"to"`
	Days []AvailableDay `json:"days"`
}

// AvailableDay свободные слоты одной даты
type AvailableDay struct {
	Date       string   `json:"date"`
	Weekday    string   `json:"weekday"`
	Times      []string `json:"times"`
	StaffCount int      `json:"staffCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]AvailableDay, len(resp.Days))
	for i, d := range resp.Days {
		times := make([]string, len(d.Slots))
		for j, slot := range d.Slots {
			times[j] = slot.Time
		}
		days[i] = AvailableDay{
			Date:       d.Date.Format(domain.DateFormat),
			Weekday:    d.Weekday,
			Times:      times,
			StaffCount: d.StaffCount,
		}
	}

	return &AvailableSlotsResponse{
		From: resp.From.Format(domain.DateFormat),
		To:   resp.To.Format(domain.DateFormat),
		Days: days,
	}
}
