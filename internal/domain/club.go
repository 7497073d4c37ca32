package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Club represents a sports facility that owns courts
type Club struct {
	ID   int64
	Name string
	Slug string

	// Часы работы клуба; пустые значения означают часы по умолчанию (09:00-22:00)
	OpenTime  types.TimeString
	CloseTime types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BusinessHours returns the club's open/close window,
// falling back to the platform defaults when the club has no override
func (c *Club) BusinessHours() types.TimeRange {
	open := c.OpenTime
	closeAt := c.CloseTime

	if open == "" {
		open = types.TimeString(DefaultOpenTime)
	}
	if closeAt == "" {
		closeAt = types.TimeString(DefaultCloseTime)
	}

	return types.TimeRange{Start: open, End: closeAt}
}
