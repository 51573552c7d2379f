package filter

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
)

var eightDigits = regexp.MustCompile(`^\d{8}$`)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"iso", []string{"2025-03-01"}, "20250301"},
		{"compacta", []string{"20250301"}, "20250301"},
		{"dia/mes/año", []string{"31/03/2025"}, "20250331"},
		{"dia/mes/año sin ceros", []string{"1/3/2025"}, "20250301"},
		{"primer valor del array", []string{"01/03/2025", "2024-01-01"}, "20250301"},
		{"vacío", []string{""}, "20250101"},
		{"nil", nil, "20250101"},
		{"basura", []string{"ontem"}, "20250101"},
		{"fecha imposible", []string{"31/02/2025"}, "20250101"},
		{"solo dos partes", []string{"03/2025"}, "20250101"},
		{"inyección", []string{"2025-01-01'; DROP TABLE atividades;--"}, "20250101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(tt.values, "2025-01-01")
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, eightDigits, got)
		})
	}
}

func TestNormalizeDate_NuncaEntraEnPanico(t *testing.T) {
	inputs := [][]string{{"//"}, {"a/b/c"}, {"/"}, {"--"}, {"99/99/9999"}, {" "}, {"1/2/3/4"}}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			assert.Regexp(t, eightDigits, NormalizeDate(in, "2020-01-01"))
		})
	}
}

func TestParseOptionalInt(t *testing.T) {
	assert.Nil(t, ParseOptionalInt(""))
	assert.Nil(t, ParseOptionalInt("null"))
	assert.Nil(t, ParseOptionalInt("NULL"))
	assert.Nil(t, ParseOptionalInt("abc"))
	assert.Nil(t, ParseOptionalInt("1 OR 1=1"))

	v := ParseOptionalInt(" 42 ")
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)
}

func TestSanitizeText(t *testing.T) {
	_, ok := SanitizeText("   ")
	assert.False(t, ok)

	s, ok := SanitizeText(" D'Ávila; ")
	require.True(t, ok)
	assert.Equal(t, "D''Ávila", s)

	// "A" + acento combinante se compone en "Á".
	s, ok = SanitizeText("A\u0301gua")
	require.True(t, ok)
	assert.Equal(t, "\u00c1gua", s)
}

func TestParseGranularity(t *testing.T) {
	assert.Equal(t, entity.GranularityMonth, ParseGranularity("mes"))
	assert.Equal(t, entity.GranularityWeek, ParseGranularity("semana"))
	assert.Equal(t, entity.GranularityWeek, ParseGranularity(""))
	assert.Equal(t, entity.GranularityWeek, ParseGranularity("ano"))
}

func TestNormalizer_Build(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	// 02:00 UTC del 11/04 todavía es 10/04 en São Paulo.
	n := NewNormalizer(loc).WithClock(func() time.Time {
		return time.Date(2025, 4, 11, 2, 0, 0, 0, time.UTC)
	})

	f := n.Build(dto.ReportQuery{
		DtInicio: []string{"01/03/2025"},
		DtFim:    []string{"31/03/2025"},
		Status:   "3",
		Periodo:  "mes",
	}, "2025-01-01")

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, loc), f.StartDate)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, loc), f.EndDate)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, loc), f.EndExclusive())
	require.NotNil(t, f.StatusID)
	assert.Equal(t, 3, *f.StatusID)
	assert.Nil(t, f.VendorID)
	assert.Nil(t, f.ActivityTypeID)
	assert.Equal(t, entity.GranularityMonth, f.Granularity)

	def := n.Build(dto.ReportQuery{Status: "null"}, "2025-01-01")
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), def.StartDate)
	assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, loc), def.EndDate)
	assert.Nil(t, def.StatusID)
	assert.Equal(t, "2025-04-10", n.Today())
}

func TestNormalizer_NullYAusenteSonIguales(t *testing.T) {
	n := NewNormalizer(time.UTC).WithClock(func() time.Time {
		return time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	})
	withNull := n.Build(dto.ReportQuery{Status: "null", TipoAtividade: "null", NmVendedor: "null"}, "2025-01-01")
	absent := n.Build(dto.ReportQuery{}, "2025-01-01")
	assert.Equal(t, absent, withNull)
}

func TestNormalizer_HoySegunZona(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	clock := func() time.Time { return time.Date(2025, 4, 11, 1, 30, 0, 0, time.UTC) }

	local := NewNormalizer(loc).WithClock(clock).Build(dto.ReportQuery{}, "2025-01-01")
	utc := NewNormalizer(time.UTC).WithClock(clock).Build(dto.ReportQuery{}, "2025-01-01")

	assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, loc), local.EndDate)
	assert.Equal(t, time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC), utc.EndDate)
	assert.Equal(t, time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC), NewNormalizer(nil).WithClock(clock).Build(dto.ReportQuery{}, "2025-01-01").EndDate)
}
