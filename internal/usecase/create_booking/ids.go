package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newBookingID генерирует уникальный ID бронирования вида APPT-20260824-1A2B3C4D.
// Уникальность обеспечивает uuid, датированный префикс - только для читаемости.
func newBookingID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("APPT-%s-%s", now.Format("20060102"), suffix)
}

// newConfirmationCode генерирует короткий код подтверждения
func newConfirmationCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}
