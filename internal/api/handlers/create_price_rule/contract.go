package create_price_rule

import (
	"context"

	createPriceRule "github.com/m04kA/SMC-CourtService/internal/usecase/create_price_rule"
)

type CreatePriceRuleUseCase interface {
	Execute(ctx context.Context, req *createPriceRule.Request) (*createPriceRule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
