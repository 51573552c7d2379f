package analytics

import (
	"time"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
)

// SummaryReport datos del resumen ya calculados, listos para exportar.
type SummaryReport struct {
	StartDate time.Time
	EndDate   time.Time
	Quota     int
	Rows      []dto.SummaryRowDTO
}

// SummaryRenderer genera el documento del resumen (PDF).
type SummaryRenderer interface {
	RenderSummary(report SummaryReport) ([]byte, error)
}
