package repository

import (
	"context"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
)

//go:generate mockgen -source=report_repository.go -destination=../../mock/report_repository_mock.go -package=mock

// ReportRepository consultas de solo lectura sobre el log de actividades.
// Toda implementación excluye los vendedores bloqueados. Los listados
// devuelven slices, posiblemente vacíos.
type ReportRepository interface {
	// Summary devuelve una fila por vendedor con cartera; quota es la meta mensual ya calculada.
	Summary(ctx context.Context, f entity.FilterSet, quota int) ([]dto.SummaryRowDTO, error)
	Evolution(ctx context.Context, f entity.FilterSet) ([]dto.EvolutionRowDTO, error)
	Distribution(ctx context.Context, f entity.FilterSet) ([]dto.DistributionRowDTO, error)
	// GlobalHistory devuelve ano/mes/total; el use case completa las etiquetas.
	GlobalHistory(ctx context.Context, f entity.FilterSet) ([]dto.HistoryRowDTO, error)
	FilterStatuses(ctx context.Context) ([]dto.FilterOptionDTO, error)
	FilterActivityTypes(ctx context.Context) ([]dto.FilterOptionDTO, error)
	FilterVendors(ctx context.Context) ([]dto.FilterOptionDTO, error)
	// BlockedCount cantidad de vendedores en la lista de bloqueo.
	BlockedCount() int
}
