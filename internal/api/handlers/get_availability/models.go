package get_availability

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ClubID          int64            `json:"clubId"`
	Date            string           `json:"date"`
	StartTime       string           `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	AvailableCourts []AvailableCourt `json:"availableCourts"`
}

// AvailableCourt модель свободного корта с ценой слота
type AvailableCourt struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Type              string `json:"type"`
	Surface           string `json:"surface"`
	Indoor            bool   `json:"indoor"`
	SportType         string `json:"sportType"`
	DefaultPriceCents int64  `json:"defaultPriceCents"`
	PriceCents        int64  `json:"priceCents"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	courts := make([]AvailableCourt, len(resp.AvailableCourts))
	for i, court := range resp.AvailableCourts {
		courts[i] = AvailableCourt{
			ID:                court.ID,
			Name:              court.Name,
			Slug:              court.Slug,
			Type:              court.Type,
			Surface:           court.Surface,
			Indoor:            court.Indoor,
			SportType:         court.SportType,
			DefaultPriceCents: court.DefaultPriceCents,
			PriceCents:        court.PriceCents,
		}
	}

	return &AvailabilityResponse{
		ClubID:          resp.ClubID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		AvailableCourts: courts,
	}
}
