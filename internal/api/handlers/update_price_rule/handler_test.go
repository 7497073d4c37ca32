package update_price_rule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	updatePriceRule "github.com/m04kA/SMC-CourtService/internal/usecase/update_price_rule"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type fakeUseCase struct {
	resp *updatePriceRule.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *updatePriceRule.Request) (*updatePriceRule.Response, error) {
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc UpdatePriceRuleUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/courts/{courtId}/price-rules/{ruleId}", NewHandler(uc, noopLogger{}).Handle).
		Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/courts/1/price-rules/10", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleConflict(t *testing.T) {
	window, err := types.NewTimeRange("15:00", "20:00")
	require.NoError(t, err)

	uc := &fakeUseCase{err: &updatePriceRule.ConflictError{
		RuleID:   20,
		RuleType: domain.RuleAllDays,
		Window:   window,
	}}

	rec := doRequest(t, uc, `{"ruleType":"WEEKDAYS","startTime":"14:00","endTime":"16:00","priceCents":9000}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	// Ответ называет тип и окно конфликтующего правила
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Error, "ALL_DAYS")
	require.Contains(t, resp.Error, "15:00-20:00")
	require.Contains(t, resp.Error, "id=20")
}

func TestHandleUpdated(t *testing.T) {
	uc := &fakeUseCase{resp: &updatePriceRule.Response{Rule: updatePriceRule.Rule{
		ID:         10,
		CourtID:    1,
		RuleType:   "WEEKDAYS",
		StartTime:  "10:00",
		EndTime:    "16:00",
		PriceCents: 9000,
	}}}

	rec := doRequest(t, uc, `{"ruleType":"WEEKDAYS","startTime":"10:00","endTime":"16:00","priceCents":9000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PriceRuleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "16:00", resp.EndTime)
}

func TestHandleRuleNotFound(t *testing.T) {
	uc := &fakeUseCase{err: updatePriceRule.ErrRuleNotFound}

	rec := doRequest(t, uc, `{"ruleType":"WEEKDAYS","startTime":"10:00","endTime":"16:00","priceCents":9000}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
