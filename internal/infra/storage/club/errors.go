package club

import "errors"

var (
	// ErrClubNotFound возвращается, когда клуб не найден
	ErrClubNotFound = errors.New("club.repository: club not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("club.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("club.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("club.repository: failed to scan row")
)
