package update_price_rule

import (
	updatePriceRule "github.com/m04kA/SMC-CourtService/internal/usecase/update_price_rule"
)

// UpdatePriceRuleRequest HTTP request model
// Правило обновляется целиком
type UpdatePriceRuleRequest struct {
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
func (r *UpdatePriceRuleRequest) ToUseCaseRequest(courtID, ruleID int64) *updatePriceRule.Request {
	return &updatePriceRule.Request{
		CourtID:    courtID,
		RuleID:     ruleID,
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
func FromUseCaseResponse(resp *updatePriceRule.Response) *PriceRuleResponse {
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
