package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo ejecuta las consultas de solo lectura del dashboard.
type ReportRepo struct {
	db Querier
	qb *ReportQueryBuilder
}

// NewReportRepository construye el adaptador de reportes con la lista de bloqueo fija del proceso.
func NewReportRepository(db Querier, blocked []int) *ReportRepo {
	return &ReportRepo{db: db, qb: NewReportQueryBuilder(blocked)}
}

// BlockedCount cantidad de vendedores en la lista de bloqueo.
func (r *ReportRepo) BlockedCount() int {
	return r.qb.BlockedCount()
}

// Summary ver ReportQueryBuilder.Summary.
func (r *ReportRepo) Summary(ctx context.Context, f entity.FilterSet, quota int) ([]dto.SummaryRowDTO, error) {
	query, args, err := r.qb.Summary(f, quota)
	if err != nil {
		return nil, fmt.Errorf("report.Summary build: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.Summary: %w", err)
	}
	defer rows.Close()

	results := []dto.SummaryRowDTO{}
	for rows.Next() {
		var row dto.SummaryRowDTO
		if err := rows.Scan(
			&row.IDVendedor,
			&row.NmVendedor,
			&row.QtdeClientesCarteira,
			&row.QtdeClientesVisitados,
			&row.QtdeClientesRisco,
			&row.PctClientesRisco,
			&row.QtdeAtividadesTotal,
			&row.QtdeAtividades30d,
			&row.QtdeAtividades60d,
			&row.MetaAtividadesMes,
			&row.PctMetaAtividadesMes,
			&row.AtividadesFaltantesMeta,
			&row.PctAtividadesFaltantesMeta,
		); err != nil {
			return nil, fmt.Errorf("report.Summary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// Evolution completa Mes o Semana según la granularidad del filtro.
func (r *ReportRepo) Evolution(ctx context.Context, f entity.FilterSet) ([]dto.EvolutionRowDTO, error) {
	query, args, err := r.qb.Evolution(f)
	if err != nil {
		return nil, fmt.Errorf("report.Evolution build: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.Evolution: %w", err)
	}
	defer rows.Close()

	results := []dto.EvolutionRowDTO{}
	for rows.Next() {
		var (
			row    dto.EvolutionRowDTO
			period int
		)
		if err := rows.Scan(&row.IDVendedor, &row.NmVendedor, &row.Ano, &period, &row.Qtd); err != nil {
			return nil, fmt.Errorf("report.Evolution scan: %w", err)
		}
		if f.Granularity == entity.GranularityMonth {
			row.Mes = &period
		} else {
			row.Semana = &period
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *ReportRepo) Distribution(ctx context.Context, f entity.FilterSet) ([]dto.DistributionRowDTO, error) {
	query, args, err := r.qb.Distribution(f)
	if err != nil {
		return nil, fmt.Errorf("report.Distribution build: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.Distribution: %w", err)
	}
	defer rows.Close()

	results := []dto.DistributionRowDTO{}
	for rows.Next() {
		var row dto.DistributionRowDTO
		if err := rows.Scan(&row.IDVendedor, &row.NmVendedor, &row.TipoAtividade, &row.Qtd); err != nil {
			return nil, fmt.Errorf("report.Distribution scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GlobalHistory deja NomeMes y Rotulo vacíos; los completa el use case.
func (r *ReportRepo) GlobalHistory(ctx context.Context, f entity.FilterSet) ([]dto.HistoryRowDTO, error) {
	query, args, err := r.qb.GlobalHistory(f)
	if err != nil {
		return nil, fmt.Errorf("report.GlobalHistory build: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.GlobalHistory: %w", err)
	}
	defer rows.Close()

	results := []dto.HistoryRowDTO{}
	for rows.Next() {
		var row dto.HistoryRowDTO
		if err := rows.Scan(&row.IDVendedor, &row.NmVendedor, &row.Ano, &row.Mes, &row.Total); err != nil {
			return nil, fmt.Errorf("report.GlobalHistory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *ReportRepo) FilterStatuses(ctx context.Context) ([]dto.FilterOptionDTO, error) {
	return r.options(ctx, "report.FilterStatuses", r.qb.FilterStatuses)
}

func (r *ReportRepo) FilterActivityTypes(ctx context.Context) ([]dto.FilterOptionDTO, error) {
	return r.options(ctx, "report.FilterActivityTypes", r.qb.FilterActivityTypes)
}

func (r *ReportRepo) FilterVendors(ctx context.Context) ([]dto.FilterOptionDTO, error) {
	return r.options(ctx, "report.FilterVendors", r.qb.FilterVendors)
}

// options ejecuta una consulta id/nome de los combos de filtros.
func (r *ReportRepo) options(ctx context.Context, op string, buildFn func() (string, []any, error)) ([]dto.FilterOptionDTO, error) {
	query, args, err := buildFn()
	if err != nil {
		return nil, fmt.Errorf("%s build: %w", op, err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	results := []dto.FilterOptionDTO{}
	for rows.Next() {
		var (
			opt  dto.FilterOptionDTO
			nome pgtype.Text
		)
		if err := rows.Scan(&opt.ID, &nome); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		opt.Nome = nome.String
		results = append(results, opt)
	}
	return results, rows.Err()
}
