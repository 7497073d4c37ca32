package create_price_rule

import (
	createPriceRule "github.com/m04kA/SMC-CourtService/internal/usecase/create_price_rule"
)

// CreatePriceRuleRequest HTTP request model
type CreatePriceRuleRequest struct {
	RuleType   string  `json:"ruleType"`
	Date       *string `json:"date,omitempty"`
	DayOfWeek  *int    `json:"dayOfWeek,omitempty"`
	HolidayID  *int64  `json:"holidayId,omitempty"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	PriceCents int64   `json:"priceCents"`
}

// PriceRuleResponse HTTP response model
type PriceRuleResponse struct {
	ID         int64   `json:"id"`
	CourtID    int64   `json:"courtId"`
	RuleType   string  `json:"ruleType"`
	Date       *string `json:"date,omitempty"`
	DayOfWeek  *int    `json:"dayOfWeek,omitempty"`
	HolidayID  *int64  `json:"holidayId,omitempty"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	PriceCents int64   `json:"priceCents"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreatePriceRuleRequest) ToUseCaseRequest(courtID int64) *createPriceRule.Request {
	return &createPriceRule.Request{
		CourtID:    courtID,
		RuleType:   r.RuleType,
		Date:       r.Date,
		DayOfWeek:  r.DayOfWeek,
		HolidayID:  r.HolidayID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		PriceCents: r.PriceCents,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPriceRule.Response) *PriceRuleResponse {
	return &PriceRuleResponse{
		ID:         resp.Rule.ID,
		CourtID:    resp.Rule.CourtID,
		RuleType:   resp.Rule.RuleType,
		Date:       resp.Rule.Date,
		DayOfWeek:  resp.Rule.DayOfWeek,
		HolidayID:  resp.Rule.HolidayID,
		StartTime:  resp.Rule.StartTime,
		EndTime:    resp.Rule.EndTime,
		PriceCents: resp.Rule.PriceCents,
	}
}
