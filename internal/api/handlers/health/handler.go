package health

import (
	"net/http"

	"github.com/m04kA/MDC-AppointmentService/internal/api/handlers"
)

// Handler liveness-проба сервиса
type Handler struct {
	serviceName string
}

func NewHandler(serviceName string) *Handler {
	return &Handler{serviceName: serviceName}
}

// HealthResponse HTTP response model
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: h.serviceName,
	})
}
