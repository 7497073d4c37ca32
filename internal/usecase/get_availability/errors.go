package get_availability

import "errors"

var (
	// ErrClubNotFound возвращается, когда клуб не найден
	// Отличается от пустого списка кортов - это условие уровня "404"
	ErrClubNotFound = errors.New("club not found")

	// ErrMissingDate возвращается, когда дата не указана
	ErrMissingDate = errors.New("date is required")

	// ErrInvalidDateFormat возвращается при некорректном формате даты
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrMissingStartTime возвращается, когда время начала не указано
	ErrMissingStartTime = errors.New("start time is required")

	// ErrInvalidTimeFormat возвращается при некорректном формате времени начала
	ErrInvalidTimeFormat = errors.New("invalid start time format, expected HH:MM")

	// ErrInvalidDuration возвращается при некорректной длительности
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")

	// ErrInvalidInput возвращается при прочих некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
