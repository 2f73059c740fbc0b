package get_availability

import (
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date            time.Time              // Дата, на которую запрашиваются слоты (без времени)
	AppointmentType domain.AppointmentType // Тип приёма, определяет длительность слота
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time              // Дата запроса (эхо)
	AppointmentType domain.AppointmentType // Тип приёма (эхо)
	Slots           []Slot                 // Слоты в порядке возрастания времени начала
}

// Slot модель временного слота с флагом доступности
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "09:00")
	EndTime   types.TimeString // Время конца слота (например, "09:30")
	Available bool             // true, если слот не пересекается ни с одним бронированием
}
