package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/analytics"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/auth"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/filter"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/usecase"
	infrapdf "github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/infrastructure/pdf"
	apphttp "github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/interfaces/http"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/mock"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/config"
	pkgjwt "github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/jwt"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/logger"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// testEnv app completa con repositorios mockeados.
type testEnv struct {
	app     *fiber.App
	users   *mock.MockUserRepository
	reports *mock.MockReportRepository
	tokens  *pkgjwt.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	reports := mock.NewMockReportRepository(ctrl)

	tokens, err := pkgjwt.NewService(pkgjwt.Config{Secret: testJWTSecret, Issuer: "api-linhagro-test"})
	require.NoError(t, err)

	userUC := usecase.NewUserUseCase(users, []string{"@linhagro.com.br", "@lithoplant.com.br"}, logger.Nop())
	authUC := auth.NewAuthUseCase(userUC, tokens, logger.Nop())
	norm := filter.NewNormalizer(time.UTC).WithClock(func() time.Time {
		return time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	})
	dashboardUC := analytics.NewDashboardUseCase(reports, norm, config.ReportConfig{
		DefaultStartDate: "2025-01-01",
		HistoryStartDate: "2020-01-01",
	}, infrapdf.NewSummaryPDF("Linhagro"))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		Tokens:      tokens,
		RateLimit:   config.RateLimitConfig{Window: time.Minute, APIMax: 1000, LoginMax: 100},
		Log:         logger.Nop(),
		ServiceName: "api-linhagro",
	})
	return &testEnv{app: app, users: users, reports: reports, tokens: tokens}
}

// bearer genera el header Authorization para el perfil indicado.
func (e *testEnv) bearer(t *testing.T, usuario, perfil string) string {
	t.Helper()
	tok, _, err := e.tokens.Issue(usuario, perfil)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (e *testEnv) do(t *testing.T, method, target, authHeader, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}
