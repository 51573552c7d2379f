// Package analytics contiene los casos de uso de los reportes del dashboard
// de atividades: resumen por vendedor, evolución, distribución, histórico
// global y opciones de filtro.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/filter"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/repository"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/pkg/config"
)

// ActivitiesPerBusinessDay actividades esperadas por vendedor en cada día hábil.
const ActivitiesPerBusinessDay = 6

var monthNames = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// DashboardUseCase normaliza los filtros y delega las consultas en ReportRepository.
type DashboardUseCase struct {
	repo     repository.ReportRepository
	norm     *filter.Normalizer
	defaults config.ReportConfig
	pdf      SummaryRenderer
}

// NewDashboardUseCase construye el caso de uso. pdf puede ser nil si no se expone la exportación.
func NewDashboardUseCase(
	repo repository.ReportRepository,
	norm *filter.Normalizer,
	defaults config.ReportConfig,
	pdf SummaryRenderer,
) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, norm: norm, defaults: defaults, pdf: pdf}
}

// Summary una fila por vendedor; la meta sale del mes de la fecha inicial.
func (uc *DashboardUseCase) Summary(ctx context.Context, q dto.ReportQuery) ([]dto.SummaryRowDTO, error) {
	f := uc.norm.Build(q, uc.defaults.DefaultStartDate)
	rows, err := uc.repo.Summary(ctx, f, MonthlyQuota(f.StartDate))
	if err != nil {
		return nil, fmt.Errorf("dashboard: resumen: %w", err)
	}
	return rows, nil
}

// SummaryPDF el mismo resumen, renderizado como PDF.
func (uc *DashboardUseCase) SummaryPDF(ctx context.Context, q dto.ReportQuery) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("dashboard: exportación PDF no configurada")
	}
	f := uc.norm.Build(q, uc.defaults.DefaultStartDate)
	quota := MonthlyQuota(f.StartDate)
	rows, err := uc.repo.Summary(ctx, f, quota)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resumen: %w", err)
	}
	return uc.pdf.RenderSummary(SummaryReport{
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Quota:     quota,
		Rows:      rows,
	})
}

func (uc *DashboardUseCase) Evolution(ctx context.Context, q dto.ReportQuery) ([]dto.EvolutionRowDTO, error) {
	rows, err := uc.repo.Evolution(ctx, uc.norm.Build(q, uc.defaults.DefaultStartDate))
	if err != nil {
		return nil, fmt.Errorf("dashboard: evolución: %w", err)
	}
	return rows, nil
}

func (uc *DashboardUseCase) Distribution(ctx context.Context, q dto.ReportQuery) ([]dto.DistributionRowDTO, error) {
	rows, err := uc.repo.Distribution(ctx, uc.norm.Build(q, uc.defaults.DefaultStartDate))
	if err != nil {
		return nil, fmt.Errorf("dashboard: distribución: %w", err)
	}
	return rows, nil
}

// GlobalHistory usa una ventana más amplia por defecto y etiqueta cada fila como "Mar/2025".
func (uc *DashboardUseCase) GlobalHistory(ctx context.Context, q dto.ReportQuery) (*dto.HistoryResponse, error) {
	f := uc.norm.Build(q, uc.defaults.HistoryStartDate)
	rows, err := uc.repo.GlobalHistory(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: histórico: %w", err)
	}
	for i := range rows {
		rows[i].NomeMes = MonthName(rows[i].Mes)
		rows[i].Rotulo = fmt.Sprintf("%s/%d", rows[i].NomeMes, rows[i].Ano)
	}
	if rows == nil {
		rows = []dto.HistoryRowDTO{}
	}

	vendor, ok := filter.SanitizeText(q.NmVendedor)
	if !ok {
		vendor = "Todos"
	}
	return &dto.HistoryResponse{
		Sucesso:  true,
		Endpoint: "historico-global",
		Filtros: dto.HistoryFiltersDTO{
			NmVendedor: vendor,
			DtInicio:   filter.Compact(f.StartDate),
			DtFim:      filter.Compact(f.EndDate),
		},
		Dados: rows,
	}, nil
}

// Filters las tres consultas de opciones corren en paralelo.
func (uc *DashboardUseCase) Filters(ctx context.Context) (*dto.FiltersResponse, error) {
	type optionsResult struct {
		rows []dto.FilterOptionDTO
		err  error
	}
	run := func(fn func(context.Context) ([]dto.FilterOptionDTO, error)) <-chan optionsResult {
		ch := make(chan optionsResult, 1)
		go func() {
			rows, err := fn(ctx)
			ch <- optionsResult{rows, err}
		}()
		return ch
	}

	vendorsCh := run(uc.repo.FilterVendors)
	statusCh := run(uc.repo.FilterStatuses)
	typesCh := run(uc.repo.FilterActivityTypes)

	vendors := <-vendorsCh
	status := <-statusCh
	types := <-typesCh

	if vendors.err != nil {
		return nil, fmt.Errorf("dashboard: filtros vendedores: %w", vendors.err)
	}
	if status.err != nil {
		return nil, fmt.Errorf("dashboard: filtros status: %w", status.err)
	}
	if types.err != nil {
		return nil, fmt.Errorf("dashboard: filtros tipos: %w", types.err)
	}

	return &dto.FiltersResponse{
		Sucesso:        true,
		Vendedores:     nonNil(vendors.rows),
		Status:         nonNil(status.rows),
		TiposAtividade: nonNil(types.rows),
		DataPadrao:     uc.defaults.DefaultStartDate,
		IdsBloqueados:  uc.repo.BlockedCount(),
	}, nil
}

func nonNil(rows []dto.FilterOptionDTO) []dto.FilterOptionDTO {
	if rows == nil {
		return []dto.FilterOptionDTO{}
	}
	return rows
}

// MonthlyQuota meta de actividades del mes calendario de t:
// ActivitiesPerBusinessDay por cada día hábil según BusinessDays.
func MonthlyQuota(t time.Time) int {
	return ActivitiesPerBusinessDay * BusinessDays(t.Year(), t.Month())
}

// BusinessDays días hábiles del mes: días corridos menos dos por cada domingo
// en (día 1, día 1 del mes siguiente], menos uno si el día 1 es domingo y
// menos uno si el día 1 del mes siguiente es sábado.
// Ej.: enero 2025 => 22, febrero 2025 => 19.
func BusinessDays(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	days := int(next.Sub(first).Hours() / 24)

	sundays := 0
	for d := first.AddDate(0, 0, 1); !d.After(next); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			sundays++
		}
	}

	n := days - 2*sundays
	if first.Weekday() == time.Sunday {
		n--
	}
	if next.Weekday() == time.Saturday {
		n--
	}
	return n
}

// MonthName abreviatura en portugués (1 = "Jan"). Fuera de rango => "".
func MonthName(month int) string {
	if month < 1 || month > len(monthNames) {
		return ""
	}
	return monthNames[month-1]
}
