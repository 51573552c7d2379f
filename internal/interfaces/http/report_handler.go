package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/analytics"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
)

// ReportHandler expone los reportes del dashboard Linhagro.
type ReportHandler struct {
	uc *analytics.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// reportQuery lee los parámetros crudos. Las fechas pueden repetirse en la URL.
func reportQuery(c *fiber.Ctx) dto.ReportQuery {
	args := c.Context().QueryArgs()
	return dto.ReportQuery{
		DtInicio:      peekAll(args.PeekMulti("dtInicio")),
		DtFim:         peekAll(args.PeekMulti("dtFim")),
		NmVendedor:    c.Query("nmVendedor"),
		Status:        c.Query("status"),
		TipoAtividade: c.Query("tipoAtividade"),
		Periodo:       c.Query("periodo"),
	}
}

func peekAll(values [][]byte) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

// Summary godoc
// @Summary      Resumo geral por vendedor
// @Description  Carteira, clientes visitados, clientes em risco, atividades e meta mensal.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Param        dtInicio       query  string  false  "YYYY-MM-DD, YYYYMMDD ou DD/MM/YYYY"
// @Param        dtFim          query  string  false  "YYYY-MM-DD, YYYYMMDD ou DD/MM/YYYY"
// @Param        nmVendedor     query  string  false  "id do vendedor"
// @Param        status         query  string  false  "id do status"
// @Param        tipoAtividade  query  string  false  "id do tipo de atividade"
// @Success      200  {object}  dto.DataResponse[dto.SummaryRowDTO]
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/linhagro/resumo-geral [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	rows, err := h.uc.Summary(c.UserContext(), reportQuery(c))
	if err != nil {
		return failDetail(c, fiber.StatusInternalServerError, "Erro ao processar resumo geral Linhagro.", err)
	}
	return c.JSON(dto.NewDataResponse(rows))
}

// SummaryPDF godoc
// @Summary      Resumo geral em PDF
// @Tags         relatorios
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        dtInicio  query  string  false  "data inicial"
// @Param        dtFim     query  string  false  "data final"
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/linhagro/resumo-geral/pdf [get]
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.SummaryPDF(c.UserContext(), reportQuery(c))
	if err != nil {
		return failDetail(c, fiber.StatusInternalServerError, "Erro ao gerar PDF do resumo geral Linhagro.", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumo-geral.pdf"`)
	return c.Send(pdf)
}

// Evolution godoc
// @Summary      Evolução de atividades por período
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Param        periodo  query  string  false  "mes ou semana (padrão)"
// @Success      200  {object}  dto.DataResponse[dto.EvolutionRowDTO]
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/linhagro/evolucao [get]
func (h *ReportHandler) Evolution(c *fiber.Ctx) error {
	rows, err := h.uc.Evolution(c.UserContext(), reportQuery(c))
	if err != nil {
		return failDetail(c, fiber.StatusInternalServerError, "Erro ao gerar evolução Linhagro.", err)
	}
	return c.JSON(dto.NewDataResponse(rows))
}

// Distribution godoc
// @Summary      Distribuição por tipo de atividade
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DataResponse[dto.DistributionRowDTO]
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/linhagro/distribuicao [get]
func (h *ReportHandler) Distribution(c *fiber.Ctx) error {
	rows, err := h.uc.Distribution(c.UserContext(), reportQuery(c))
	if err != nil {
		return failDetail(c, fiber.StatusInternalServerError, "Erro ao gerar distribuição Linhagro.", err)
	}
	return c.JSON(dto.NewDataResponse(rows))
}

// GlobalHistory godoc
// @Summary      Histórico mensal global
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.HistoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/linhagro/historico-global [get]
func (h *ReportHandler) GlobalHistory(c *fiber.Ctx) error {
	out, err := h.uc.GlobalHistory(c.UserContext(), reportQuery(c))
	if err != nil {
		return failDetail(c, fiber.StatusInternalServerError, "Erro ao gerar histórico global Linhagro.", err)
	}
	return c.JSON(out)
}

// Filters godoc
// @Summary      Opções dos filtros
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.FiltersResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/linhagro/filtros [get]
func (h *ReportHandler) Filters(c *fiber.Ctx) error {
	out, err := h.uc.Filters(c.UserContext())
	if err != nil {
		return failDetail(c, fiber.StatusInternalServerError, "Erro ao carregar filtros Linhagro.", err)
	}
	return c.JSON(out)
}
