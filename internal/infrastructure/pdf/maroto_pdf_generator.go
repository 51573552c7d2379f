// Package pdf exporta el resumen general del dashboard a PDF.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Linhagro · Resumo Geral  │  Período + meta mensal    │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Vendedor | Carteira | Visitados | Risco | ... | Falt. │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TOTALES: suma de carteira, risco y atividades                │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/analytics"
	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 34, Green: 110, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRisk    = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ analytics.SummaryRenderer = (*SummaryPDF)(nil)

// SummaryPDF implementa analytics.SummaryRenderer usando Maroto v2.
type SummaryPDF struct {
	title string
}

// NewSummaryPDF construye el generador. title aparece en la cabecera y en los metadatos.
func NewSummaryPDF(title string) *SummaryPDF {
	if title == "" {
		title = "Linhagro"
	}
	return &SummaryPDF{title: title}
}

// RenderSummary genera el PDF y devuelve sus bytes.
func (g *SummaryPDF) RenderSummary(report analytics.SummaryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(g.title+" - Resumo Geral", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(report.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Nenhum vendedor encontrado para o período.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}
	for _, r := range tableDetailRows(report.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar resumen: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y período + meta (der).
func (g *SummaryPDF) headerRow(report analytics.SummaryReport) core.Row {
	periodo := report.StartDate.Format("02/01/2006") + " a " + report.EndDate.Format("02/01/2006")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumo geral de atividades por vendedor", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+periodo, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New(fmt.Sprintf("Meta mensal: %d atividades", report.Quota), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

type column struct {
	label string
	size  int
	align align.Type
}

// Suman 12.
var summaryColumns = []column{
	{"Vendedor", 3, align.Left},
	{"Carteira", 1, align.Center},
	{"Visitados", 1, align.Center},
	{"Risco", 1, align.Center},
	{"% Risco", 1, align.Right},
	{"Ativ.", 1, align.Center},
	{"30d", 1, align.Center},
	{"60d", 1, align.Center},
	{"% Meta", 1, align.Right},
	{"Faltantes", 1, align.Right},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(summaryColumns))
	for _, c := range summaryColumns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableDetailRows: una fila por vendedor. Riesgo >= 50% en rojo.
func tableDetailRows(rows []dto.SummaryRowDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		riskStyle := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if r.PctClientesRisco.Valid && r.PctClientesRisco.Decimal.GreaterThanOrEqual(decimal.NewFromInt(50)) {
			riskStyle.Color = colorRisk
			riskStyle.Style = fontstyle.Bold
		}

		values := []string{
			r.NmVendedor,
			strconv.Itoa(r.QtdeClientesCarteira),
			strconv.Itoa(r.QtdeClientesVisitados),
			strconv.Itoa(r.QtdeClientesRisco),
			formatPct(r.PctClientesRisco),
			strconv.Itoa(r.QtdeAtividadesTotal),
			strconv.Itoa(r.QtdeAtividades30d),
			strconv.Itoa(r.QtdeAtividades60d),
			formatPct(r.PctMetaAtividadesMes),
			strconv.Itoa(r.AtividadesFaltantesMeta),
		}

		cols := make([]core.Col, 0, len(summaryColumns))
		for i, c := range summaryColumns {
			style := props.Text{Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1}
			if i == 4 {
				style = riskStyle
			}
			cols = append(cols, col.New(c.size).Add(text.New(values[i], style)))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

func totalsRow(rows []dto.SummaryRowDTO) core.Row {
	var carteira, risco, ativ int
	for _, r := range rows {
		carteira += r.QtdeClientesCarteira
		risco += r.QtdeClientesRisco
		ativ += r.QtdeAtividadesTotal
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 2})
	}
	value := func(n int) core.Component {
		return text.New(strconv.Itoa(n), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Left, Top: 2, Color: colorPrimary})
	}
	return row.New(10).Add(
		col.New(2).Add(label("Carteira:")),
		col.New(2).Add(value(carteira)),
		col.New(2).Add(label("Em risco:")),
		col.New(2).Add(value(risco)),
		col.New(2).Add(label("Atividades:")),
		col.New(2).Add(value(ativ)),
	)
}

// formatPct "12.50%" o "-" si el porcentaje no está definido.
func formatPct(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.StringFixed(2) + "%"
}
