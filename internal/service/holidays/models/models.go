package models

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// CreateHolidayRequest запрос на создание праздничной даты
type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
}

// HolidayView праздничная дата в представлении для отображения
type HolidayView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// HolidayListResponse список праздничных дат
type HolidayListResponse struct {
	Holidays []HolidayView `json:"holidays"`
}

// FromDomainHoliday конвертирует доменную праздничную дату в представление
func FromDomainHoliday(h *domain.HolidayDate) HolidayView {
	return HolidayView{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date.Format(domain.DateFormat),
	}
}
