package update_price_rule

import (
	"context"

	updatePriceRule "github.com/m04kA/SMC-CourtService/internal/usecase/update_price_rule"
)

type UpdatePriceRuleUseCase interface {
	Execute(ctx context.Context, req *updatePriceRule.Request) (*updatePriceRule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
