package get_price_quote

import (
	"context"

	resolvePrice "github.com/m04kA/SMC-CourtService/internal/usecase/resolve_price"
)

type ResolvePriceUseCase interface {
	Execute(ctx context.Context, req *resolvePrice.Request) (*resolvePrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
