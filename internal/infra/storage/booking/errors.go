package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.store: booking not found")

	// ErrDuplicateID возвращается при попытке сохранить бронирование с занятым ID
	ErrDuplicateID = errors.New("booking.store: duplicate booking id")
)
