package create_booking

import (
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	AppointmentType domain.AppointmentType // Тип приёма
	Date            time.Time              // Дата бронирования (без времени)
	StartTime       types.TimeString       // Запрошенное время начала (например, "09:00")
	Patient         domain.Patient         // Данные пациента
	Reason          *string                // Причина визита (опционально)
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	BookingID        string                 // ID бронирования (APPT-YYYYMMDD-XXXXXXXX)
	ConfirmationCode string                 // Код подтверждения
	Status           string                 // Всегда "confirmed"
	AppointmentType  domain.AppointmentType // Тип приёма (эхо)
	Date             time.Time              // Дата (эхо)
	StartTime        types.TimeString       // Время начала (эхо)
	EndTime          types.TimeString       // Вычисленное время конца
	Patient          domain.Patient         // Данные пациента (эхо)
	Reason           *string                // Причина визита (эхо)
	CreatedAt        time.Time              // Время создания
}
