package get_price_quote

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	resolvePrice "github.com/m04kA/SMC-CourtService/internal/usecase/resolve_price"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// PriceQuoteResponse HTTP response model
type PriceQuoteResponse struct {
	CourtID         int64  `json:"courtId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	PriceCents      int64  `json:"priceCents"`
	Source          string `json:"source"`
	RuleID          *int64 `json:"ruleId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolvePrice.Response) *PriceQuoteResponse {
	return &PriceQuoteResponse{
		CourtID:         resp.CourtID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		PriceCents:      resp.PriceCents,
		Source:          string(resp.Source),
		RuleID:          resp.RuleID,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(courtID int64, dateStr, startTimeStr string, durationMinutes int) (*resolvePrice.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	// Парсим и нормализуем время начала
	startTime, err := types.NewTimeStringFromString(startTimeStr)
	if err != nil {
		return nil, err
	}

	return &resolvePrice.Request{
		CourtID:         courtID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
	}, nil
}
