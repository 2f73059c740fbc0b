package get_availability

import (
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	getAvailability "github.com/m04kA/MDC-AppointmentService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string `json:"date"`
	AppointmentType string `json:"appointmentType"`
	Slots           []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, appointmentType string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		Date:            date,
		AppointmentType: domain.AppointmentType(appointmentType),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		}
	}

	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		AppointmentType: string(resp.AppointmentType),
		Slots:           slots,
	}
}
