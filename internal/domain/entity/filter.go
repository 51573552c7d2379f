package entity

import "time"

// Granularity agrupación temporal del reporte de evolución.
type Granularity string

const (
	GranularityMonth Granularity = "mes"
	GranularityWeek  Granularity = "semana"
)

// FilterSet filtros ya normalizados de un reporte.
// StartDate y EndDate son siempre días concretos (medianoche, en la zona de la app);
// los filtros numéricos nil significan "sin filtro".
type FilterSet struct {
	StartDate      time.Time
	EndDate        time.Time
	VendorID       *int
	StatusID       *int
	ActivityTypeID *int
	Granularity    Granularity
}

// EndExclusive primer instante posterior al día final: el rango cubre todo EndDate.
func (f FilterSet) EndExclusive() time.Time {
	return f.EndDate.AddDate(0, 0, 1)
}

// LastInstant último segundo del día final, referencia de las ventanas de 30/60 días.
func (f FilterSet) LastInstant() time.Time {
	return f.EndExclusive().Add(-time.Second)
}
