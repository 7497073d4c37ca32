package holidays

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда праздничная дата не найдена
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
