// Package filter convierte los parámetros crudos de la URL en un entity.FilterSet.
// Ninguna función de este paquete devuelve error: la entrada inválida cae en
// valores por defecto seguros.
package filter

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
)

// CompactLayout formato YYYYMMDD que producen NormalizeDate y Compact.
const CompactLayout = "20060102"

// SanitizeText normaliza texto libre (trim + NFC), duplica comillas simples y
// elimina ';'. Devuelve false si no queda nada.
// Las consultas siguen usando parámetros; esto solo limpia lo que se devuelve al cliente.
func SanitizeText(input string) (string, bool) {
	s := strings.TrimSpace(norm.NFC.String(input))
	if s == "" {
		return "", false
	}
	s = strings.ReplaceAll(s, "'", "''")
	s = strings.ReplaceAll(s, ";", "")
	return s, true
}

// NormalizeDate toma el primer valor, acepta YYYY-MM-DD, YYYYMMDD o DD/MM/YYYY
// y devuelve YYYYMMDD. Cualquier otra forma devuelve fallback sin guiones.
func NormalizeDate(values []string, fallback string) string {
	stripped := strings.ReplaceAll(fallback, "-", "")

	var d string
	if len(values) > 0 {
		d = strings.TrimSpace(values[0])
	}
	if d == "" {
		return stripped
	}

	if parts := strings.Split(d, "/"); len(parts) == 3 {
		d = parts[2] + "-" + pad2(parts[1]) + "-" + pad2(parts[0])
	}
	d = strings.ReplaceAll(d, "-", "")

	if _, err := time.Parse(CompactLayout, d); err != nil {
		return stripped
	}
	return d
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ParseOptionalInt interpreta un filtro numérico. Vacío, "null" o no numérico => nil (sin filtro).
func ParseOptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// ParseGranularity "mes" agrupa por mes; cualquier otro valor por semana.
func ParseGranularity(raw string) entity.Granularity {
	if strings.EqualFold(strings.TrimSpace(raw), string(entity.GranularityMonth)) {
		return entity.GranularityMonth
	}
	return entity.GranularityWeek
}

// Compact formatea un día como YYYYMMDD.
func Compact(t time.Time) string {
	return t.Format(CompactLayout)
}

// Normalizer resuelve fechas relativas a "hoy" en la zona horaria de la app.
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

// NewNormalizer crea un Normalizer. loc nil => UTC.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	cp := *n
	cp.now = now
	return &cp
}

// Today fecha actual en la zona configurada, formato YYYY-MM-DD.
func (n *Normalizer) Today() string {
	return n.now().In(n.loc).Format(time.DateOnly)
}

// Build arma el FilterSet. defaultStart (YYYY-MM-DD) aplica si dtInicio falta o es inválido;
// dtFim inválido o ausente es hoy. Si el inicio queda después del fin no se corrige:
// la consulta simplemente no devuelve filas.
func (n *Normalizer) Build(q dto.ReportQuery, defaultStart string) entity.FilterSet {
	return entity.FilterSet{
		StartDate:      n.day(NormalizeDate(q.DtInicio, defaultStart)),
		EndDate:        n.day(NormalizeDate(q.DtFim, n.Today())),
		VendorID:       ParseOptionalInt(q.NmVendedor),
		StatusID:       ParseOptionalInt(q.Status),
		ActivityTypeID: ParseOptionalInt(q.TipoAtividade),
		Granularity:    ParseGranularity(q.Periodo),
	}
}

func (n *Normalizer) day(compact string) time.Time {
	t, err := time.ParseInLocation(CompactLayout, compact, n.loc)
	if err != nil {
		// Solo ocurre si el fallback configurado es inválido.
		y, m, d := n.now().In(n.loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, n.loc)
	}
	return t
}
