package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"GodSignal/internal/domain/models"
	xhttp "GodSignal/pkg/http"
	xlogger "GodSignal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPages struct {
	signalsReq models.SignalsRequest
	whalesReq  models.WhalesRequest
	exportErr  error
}

func (s *stubPages) Dashboard(context.Context) models.DashboardPage {
	return models.DashboardPage{Signals: []models.Signal{{Token: "PEPE", Score: 94}}}
}

func (s *stubPages) Signals(_ context.Context, req models.SignalsRequest) models.SignalsPage {
	s.signalsReq = req
	return models.SignalsPage{Signals: []models.Signal{}, Search: req.Search, Type: req.Type}
}

func (s *stubPages) Whales(_ context.Context, req models.WhalesRequest) models.WhalesPage {
	s.whalesReq = req
	return models.WhalesPage{Chain: req.Chain}
}

func (s *stubPages) Analytics(context.Context) models.AnalyticsPage {
	return models.AnalyticsPage{Stats: models.AnalyticsStats{WinRate: 75}}
}

func (s *stubPages) ExportSignals(_ context.Context, req models.SignalsRequest, w io.Writer) (int, error) {
	s.signalsReq = req
	if s.exportErr != nil {
		return 0, s.exportErr
	}
	_, err := io.WriteString(w, "Token\nPEPE\n")
	return 1, err
}

func newTestEcho(p *stubPages) *echo.Echo {
	e := echo.New()
	NewPagesHandler(xlogger.Nop(), p).RegisterRoutes(e)
	return e
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) xhttp.APIResponse {
	t.Helper()
	var raw struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return xhttp.APIResponse{Status: raw.Status, Message: raw.Message}
}

func TestDashboardEndpoint(t *testing.T) {
	rec := serve(newTestEcho(&stubPages{}), "/api/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))

	var page models.DashboardPage
	env := decodeEnvelope(t, rec, &page)
	assert.Equal(t, http.StatusOK, env.Status)
	require.Len(t, page.Signals, 1)
	assert.Equal(t, "PEPE", page.Signals[0].Token)
}

func TestSignalsEndpointDefaultsAndFilters(t *testing.T) {
	p := &stubPages{}
	e := newTestEcho(p)

	rec := serve(e, "/api/signals")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALL", p.signalsReq.Type)

	rec = serve(e, "/api/signals?search=pe&type=bearish")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SignalsRequest{Search: "pe", Type: "bearish"}, p.signalsReq)
}

func TestSignalsEndpointRejectsUnknownType(t *testing.T) {
	rec := serve(newTestEcho(&stubPages{}), "/api/signals?type=sideways")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errs []xhttp.ValidationError
	decodeEnvelope(t, rec, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "ERR_ONEOF", errs[0].Code)
	assert.Equal(t, "Type", errs[0].Field)
}

func TestWhalesEndpoint(t *testing.T) {
	p := &stubPages{}
	e := newTestEcho(p)

	rec := serve(e, "/api/whales?chain=SOL")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SOL", p.whalesReq.Chain)

	// Chains outside the built-in set pass through to the filter.
	rec = serve(e, "/api/whales?chain=POLYGON")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "POLYGON", p.whalesReq.Chain)

	rec = serve(e, "/api/whales?chain=not-a-chain")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errs []xhttp.ValidationError
	decodeEnvelope(t, rec, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "ERR_ALPHANUM", errs[0].Code)
	assert.Equal(t, "Chain", errs[0].Field)
}

func TestAnalyticsEndpoint(t *testing.T) {
	rec := serve(newTestEcho(&stubPages{}), "/api/analytics")

	require.Equal(t, http.StatusOK, rec.Code)
	var page models.AnalyticsPage
	decodeEnvelope(t, rec, &page)
	assert.Equal(t, 75.0, page.Stats.WinRate)
}

func TestExportEndpoint(t *testing.T) {
	p := &stubPages{}
	rec := serve(newTestEcho(p), "/api/signals/export?search=pepe")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="god-signal-export.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "Token\nPEPE\n", rec.Body.String())
	assert.Equal(t, "pepe", p.signalsReq.Search)
}

func TestExportEndpointFailure(t *testing.T) {
	rec := serve(newTestEcho(&stubPages{exportErr: errors.New("disk full")}), "/api/signals/export")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	rec := serve(newTestEcho(&stubPages{}), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeEnvelope(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}
