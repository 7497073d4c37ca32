package delete_price_rule

import "context"

type PriceRulesService interface {
	Delete(ctx context.Context, courtID, ruleID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
