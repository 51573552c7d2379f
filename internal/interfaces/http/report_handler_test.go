package http_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReport_ResumoGeralMarzo2025(t *testing.T) {
	env := newTestEnv(t)
	env.reports.EXPECT().Summary(gomock.Any(), gomock.Any(), 126).DoAndReturn(
		func(_ context.Context, f entity.FilterSet, _ int) ([]dto.SummaryRowDTO, error) {
			assert.Equal(t, date(2025, 3, 1), f.StartDate)
			assert.Equal(t, date(2025, 3, 31), f.EndDate)
			assert.Nil(t, f.VendorID)
			assert.Nil(t, f.StatusID)
			return []dto.SummaryRowDTO{{
				IDVendedor: 10, NmVendedor: "Ana", QtdeClientesCarteira: 4, QtdeClientesRisco: 1,
				PctClientesRisco:    decimal.NewNullDecimal(decimal.RequireFromString("25.00")),
				QtdeAtividadesTotal: 3, MetaAtividadesMes: 126, AtividadesFaltantesMeta: 123,
			}}, nil
		})

	resp := env.do(t, http.MethodGet,
		"/api/linhagro/resumo-geral?dtInicio=01/03/2025&dtFim=2025-03-31&nmVendedor=null&status=",
		env.bearer(t, "ana", "consultor"), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, true, body["sucesso"])
	rows := body["dados"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "Ana", row["nmVendedor"])
	assert.EqualValues(t, 126, row["meta_atividades_mes"])
	assert.EqualValues(t, 123, row["atividades_faltantes_meta"])
	assert.Nil(t, row["pct_meta_atividades_mes"])
}

func TestReport_FechaRepetidaUsaLaPrimera(t *testing.T) {
	env := newTestEnv(t)
	env.reports.EXPECT().Distribution(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f entity.FilterSet) ([]dto.DistributionRowDTO, error) {
			assert.Equal(t, date(2025, 3, 1), f.StartDate)
			require.NotNil(t, f.ActivityTypeID)
			assert.Equal(t, 7, *f.ActivityTypeID)
			return nil, nil
		})

	resp := env.do(t, http.MethodGet,
		"/api/linhagro/distribuicao?dtInicio=2025-03-01&dtInicio=2024-01-01&tipoAtividade=7",
		env.bearer(t, "ana", "consultor"), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"dados":[]`)
}

func TestReport_EvolucaoMensal(t *testing.T) {
	env := newTestEnv(t)
	mes := 3
	env.reports.EXPECT().Evolution(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f entity.FilterSet) ([]dto.EvolutionRowDTO, error) {
			assert.Equal(t, entity.GranularityMonth, f.Granularity)
			// sin dtFim: hoy según el reloj del normalizador
			assert.Equal(t, date(2025, 4, 10), f.EndDate)
			return []dto.EvolutionRowDTO{{IDVendedor: 10, NmVendedor: "Ana", Ano: 2025, Mes: &mes, Qtd: 3}}, nil
		})

	resp := env.do(t, http.MethodGet, "/api/linhagro/evolucao?periodo=mes", env.bearer(t, "ana", "consultor"), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	row := decode(t, resp)["dados"].([]any)[0].(map[string]any)
	assert.EqualValues(t, 3, row["mes"])
	assert.NotContains(t, row, "semana")
}

func TestReport_ErrorDeBaseDevuelve500ConDetalle(t *testing.T) {
	env := newTestEnv(t)
	env.reports.EXPECT().Summary(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("relation \"atividades\" does not exist"))

	resp := env.do(t, http.MethodGet, "/api/linhagro/resumo-geral", env.bearer(t, "ana", "consultor"), "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, false, body["sucesso"])
	assert.Equal(t, "Erro ao processar resumo geral Linhagro.", body["erro"])
	assert.Contains(t, body["detalhe"], "does not exist")
}

func TestReport_HistoricoGlobal(t *testing.T) {
	env := newTestEnv(t)
	env.reports.EXPECT().GlobalHistory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f entity.FilterSet) ([]dto.HistoryRowDTO, error) {
			assert.Equal(t, date(2020, 1, 1), f.StartDate)
			return []dto.HistoryRowDTO{{IDVendedor: 10, NmVendedor: "Ana", Ano: 2025, Mes: 3, Total: 9}}, nil
		})

	resp := env.do(t, http.MethodGet, "/api/linhagro/historico-global", env.bearer(t, "ana", "consultor"), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	filtros := body["filtros"].(map[string]any)
	assert.Equal(t, "Todos", filtros["nmVendedor"])
	assert.Equal(t, "20200101", filtros["dtInicio"])
	assert.Equal(t, "20250410", filtros["dtFim"])
	row := body["dados"].([]any)[0].(map[string]any)
	assert.Equal(t, "Mar", row["nome_mes"])
	assert.Equal(t, "Mar/2025", row["rotulo"])
}

func TestReport_Filtros(t *testing.T) {
	env := newTestEnv(t)
	env.reports.EXPECT().FilterVendors(gomock.Any()).Return([]dto.FilterOptionDTO{{ID: 10, Nome: "Ana"}}, nil)
	env.reports.EXPECT().FilterStatuses(gomock.Any()).Return(nil, nil)
	env.reports.EXPECT().FilterActivityTypes(gomock.Any()).Return([]dto.FilterOptionDTO{{ID: 1, Nome: "Visita"}}, nil)
	env.reports.EXPECT().BlockedCount().Return(24)

	resp := env.do(t, http.MethodGet, "/api/linhagro/filtros", env.bearer(t, "ana", "consultor"), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "2025-01-01", body["dataPadrao"])
	assert.EqualValues(t, 24, body["idsBloqueados"])
	assert.Equal(t, []any{}, body["status"])
	assert.Len(t, body["vendedores"], 1)
}

func TestReport_ResumoPDF(t *testing.T) {
	env := newTestEnv(t)
	env.reports.EXPECT().Summary(gomock.Any(), gomock.Any(), 126).Return([]dto.SummaryRowDTO{
		{IDVendedor: 10, NmVendedor: "Ana", MetaAtividadesMes: 126, AtividadesFaltantesMeta: 126},
	}, nil)

	resp := env.do(t, http.MethodGet, "/api/linhagro/resumo-geral/pdf?dtInicio=2025-03-01&dtFim=2025-03-31",
		env.bearer(t, "ana", "consultor"), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestBannerYHealth(t *testing.T) {
	env := newTestEnv(t)

	body := decode(t, env.do(t, http.MethodGet, "/", "", ""))
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "linhagro-v1.0", body["api"])

	body = decode(t, env.do(t, http.MethodGet, "/health", "", ""))
	assert.Equal(t, "ok", body["status"])
}
