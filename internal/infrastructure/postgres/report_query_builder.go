package postgres

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/domain/entity"
)

// ReportQueryBuilder arma el SQL de los reportes del dashboard.
// Todo valor variable viaja como parámetro; la lista de bloqueo se aplica
// sobre la columna de vendedor de cada consulta.
//
// Los fragmentos se construyen con placeholders "?" y se numeran ($1, $2, ...)
// una sola vez al final, para poder anidar CTEs.
type ReportQueryBuilder struct {
	blocked []int
}

// NewReportQueryBuilder copia la lista de bloqueo; no se modifica después.
func NewReportQueryBuilder(blocked []int) *ReportQueryBuilder {
	return &ReportQueryBuilder{blocked: append([]int{}, blocked...)}
}

// BlockedCount cantidad de vendedores excluidos.
func (b *ReportQueryBuilder) BlockedCount() int {
	return len(b.blocked)
}

// notBlocked excluye la lista de bloqueo. Lista vacía => (1=1).
func (b *ReportQueryBuilder) notBlocked(col string) sq.Sqlizer {
	return sq.NotEq{col: b.blocked}
}

// optionalEq filtro numérico opcional. El SQL es el mismo con o sin valor:
// un parámetro NULL deja pasar todas las filas.
func optionalEq(col string, v *int) sq.Sqlizer {
	arg := optionalArg(v)
	return sq.Expr(fmt.Sprintf("(CAST(? AS integer) IS NULL OR %s = ?)", col), arg, arg)
}

// activityWhere condiciones comunes sobre atividades (alias a).
// El rango incluye el día final completo: dt_inicial < día siguiente.
func (b *ReportQueryBuilder) activityWhere(f entity.FilterSet) sq.And {
	return sq.And{
		b.notBlocked("a.id_vendedor"),
		sq.GtOrEq{"a.dt_inicial": f.StartDate},
		sq.Lt{"a.dt_inicial": f.EndExclusive()},
		optionalEq("a.id_status", f.StatusID),
		optionalEq("a.id_tipo_atividade", f.ActivityTypeID),
		optionalEq("a.id_vendedor", f.VendorID),
	}
}

type cte struct {
	name string
	q    sq.Sqlizer
}

// build antepone las CTEs (en orden) a main y numera los placeholders.
func build(ctes []cte, main sq.Sqlizer) (string, []any, error) {
	var (
		sb   strings.Builder
		args []any
	)
	for i, c := range ctes {
		s, a, err := c.q.ToSql()
		if err != nil {
			return "", nil, fmt.Errorf("cte %s: %w", c.name, err)
		}
		if i == 0 {
			sb.WriteString("WITH ")
		} else {
			sb.WriteString(",\n")
		}
		sb.WriteString(c.name)
		sb.WriteString(" AS (")
		sb.WriteString(s)
		sb.WriteString(")")
		args = append(args, a...)
	}
	s, a, err := main.ToSql()
	if err != nil {
		return "", nil, err
	}
	if len(ctes) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(s)
	args = append(args, a...)

	query, err := sq.Dollar.ReplacePlaceholders(sb.String())
	if err != nil {
		return "", nil, err
	}
	return query, args, nil
}

// Summary una fila por vendedor con cartera. quota es la meta mensual ya calculada.
// Las ventanas de 30/60 días se cuentan hacia atrás desde el último instante del día final.
func (b *ReportQueryBuilder) Summary(f entity.FilterSet, quota int) (string, []any, error) {
	last := f.LastInstant()

	filtered := sq.Select("a.id_vendedor", "a.id_cliente", "a.dt_inicial").
		From("atividades a").
		Where(b.activityWhere(f))

	visited := sq.Select("DISTINCT af.id_cliente").
		From("atividades_filtradas af").
		Where("af.id_cliente IS NOT NULL")

	portfolio := sq.Select(
		"cc.vendedor_id AS id_vendedor",
		"COUNT(DISTINCT c.id) AS qtde_clientes_carteira",
		"COUNT(DISTINCT CASE WHEN cv.id_cliente IS NOT NULL THEN c.id END) AS qtde_clientes_visitados",
		"COUNT(DISTINCT CASE WHEN cv.id_cliente IS NULL THEN c.id END) AS qtde_clientes_risco",
	).
		From("cliente c").
		Join("cliente_consultor cc ON cc.cliente_id = c.id").
		LeftJoin("clientes_visitados cv ON cv.id_cliente = c.id").
		Where("cc.vendedor_id IS NOT NULL").
		Where(b.notBlocked("cc.vendedor_id")).
		Where(optionalEq("cc.vendedor_id", f.VendorID)).
		GroupBy("cc.vendedor_id")

	activity := sq.Select("af.id_vendedor", "COUNT(*) AS qtde_atividades_total").
		Column(sq.Expr("COUNT(*) FILTER (WHERE af.dt_inicial >= ?) AS qtde_atividades_30d", last.AddDate(0, 0, -30))).
		Column(sq.Expr("COUNT(*) FILTER (WHERE af.dt_inicial >= ?) AS qtde_atividades_60d", last.AddDate(0, 0, -60))).
		From("atividades_filtradas af").
		GroupBy("af.id_vendedor")

	meta := sq.Select().Column(sq.Expr("CAST(? AS integer) AS meta_atividades_mes", quota))

	names := sq.Select("n.id_vendedor", "MAX(n.nm_vendedor) AS nm_vendedor").
		From("atividades n").
		Where(b.notBlocked("n.id_vendedor")).
		GroupBy("n.id_vendedor")

	main := sq.Select(
		"c.id_vendedor",
		"COALESCE(v.nm_vendedor, 'Vendedor ' || c.id_vendedor) AS nm_vendedor",
		"c.qtde_clientes_carteira",
		"c.qtde_clientes_visitados",
		"c.qtde_clientes_risco",
		"ROUND(100.0 * c.qtde_clientes_risco / NULLIF(c.qtde_clientes_carteira, 0), 2) AS pct_clientes_risco",
		"COALESCE(r.qtde_atividades_total, 0) AS qtde_atividades_total",
		"COALESCE(r.qtde_atividades_30d, 0) AS qtde_atividades_30d",
		"COALESCE(r.qtde_atividades_60d, 0) AS qtde_atividades_60d",
		"m.meta_atividades_mes",
		"ROUND(100.0 * COALESCE(r.qtde_atividades_total, 0) / NULLIF(m.meta_atividades_mes, 0), 2) AS pct_meta_atividades_mes",
		"m.meta_atividades_mes - COALESCE(r.qtde_atividades_total, 0) AS atividades_faltantes_meta",
		"ROUND(100.0 * (m.meta_atividades_mes - COALESCE(r.qtde_atividades_total, 0)) / NULLIF(m.meta_atividades_mes, 0), 2) AS pct_atividades_faltantes_meta",
	).
		From("resumo_carteira c").
		LeftJoin("resumo_atividades r ON r.id_vendedor = c.id_vendedor").
		LeftJoin("vendedores_nomes v ON v.id_vendedor = c.id_vendedor").
		JoinClause("CROSS JOIN meta m").
		Where(b.notBlocked("c.id_vendedor")).
		OrderBy("nm_vendedor", "c.id_vendedor")

	return build([]cte{
		{"atividades_filtradas", filtered},
		{"clientes_visitados", visited},
		{"resumo_carteira", portfolio},
		{"resumo_atividades", activity},
		{"meta", meta},
		{"vendedores_nomes", names},
	}, main)
}

// Evolution cantidad de actividades por vendedor y período.
// Mes: (año, mes). Semana: (año ISO, semana ISO), así la semana 1 de enero no se mezcla con la de diciembre.
func (b *ReportQueryBuilder) Evolution(f entity.FilterSet) (string, []any, error) {
	yearExpr, periodExpr, periodCol := "EXTRACT(ISOYEAR FROM a.dt_inicial)", "EXTRACT(WEEK FROM a.dt_inicial)", "semana"
	if f.Granularity == entity.GranularityMonth {
		yearExpr, periodExpr, periodCol = "EXTRACT(YEAR FROM a.dt_inicial)", "EXTRACT(MONTH FROM a.dt_inicial)", "mes"
	}

	q := sq.Select(
		"a.id_vendedor",
		"COALESCE(a.nm_vendedor, '') AS nm_vendedor",
		"CAST("+yearExpr+" AS integer) AS ano",
		"CAST("+periodExpr+" AS integer) AS "+periodCol,
		"COUNT(*) AS qtd",
	).
		From("atividades a").
		Where(b.activityWhere(f)).
		GroupBy("a.id_vendedor", "a.nm_vendedor", "ano", periodCol).
		OrderBy("a.nm_vendedor", "a.id_vendedor", "ano", periodCol)

	return build(nil, q)
}

// Distribution actividades por vendedor y tipo (solo tipos activos).
func (b *ReportQueryBuilder) Distribution(f entity.FilterSet) (string, []any, error) {
	q := sq.Select("a.id_vendedor", "COALESCE(a.nm_vendedor, '') AS nm_vendedor", "t.nome AS tipo_atividade", "COUNT(*) AS qtd").
		From("atividades a").
		Join("tp_atividade t ON t.id_tipo_atividade = a.id_tipo_atividade").
		Where(b.activityWhere(f)).
		Where(sq.Eq{"t.ativo": true}).
		GroupBy("a.id_vendedor", "a.nm_vendedor", "t.nome").
		OrderBy("a.nm_vendedor", "qtd DESC", "t.nome")

	return build(nil, q)
}

// GlobalHistory total mensual por vendedor.
func (b *ReportQueryBuilder) GlobalHistory(f entity.FilterSet) (string, []any, error) {
	q := sq.Select(
		"a.id_vendedor",
		"COALESCE(a.nm_vendedor, '') AS nm_vendedor",
		"CAST(EXTRACT(YEAR FROM a.dt_inicial) AS integer) AS ano",
		"CAST(EXTRACT(MONTH FROM a.dt_inicial) AS integer) AS mes",
		"COUNT(*) AS total",
	).
		From("atividades a").
		Where(b.activityWhere(f)).
		GroupBy("a.id_vendedor", "a.nm_vendedor", "ano", "mes").
		OrderBy("a.nm_vendedor", "a.id_vendedor", "ano", "mes")

	return build(nil, q)
}

// FilterStatuses estados presentes en actividades de vendedores no bloqueados.
func (b *ReportQueryBuilder) FilterStatuses() (string, []any, error) {
	q := sq.Select("a.id_status AS id", "MAX(a.status) AS nome").
		From("atividades a").
		Where(b.notBlocked("a.id_vendedor")).
		Where("a.id_status IS NOT NULL").
		Where("a.status IS NOT NULL").
		GroupBy("a.id_status").
		OrderBy("nome")

	return build(nil, q)
}

// FilterActivityTypes tipos activos usados por vendedores no bloqueados.
func (b *ReportQueryBuilder) FilterActivityTypes() (string, []any, error) {
	q := sq.Select("t.id_tipo_atividade AS id", "t.nome").
		Distinct().
		From("tp_atividade t").
		Join("atividades a ON a.id_tipo_atividade = t.id_tipo_atividade").
		Where(sq.Eq{"t.ativo": true}).
		Where(b.notBlocked("a.id_vendedor")).
		OrderBy("t.nome")

	return build(nil, q)
}

// FilterVendors vendedores no bloqueados con al menos una actividad.
func (b *ReportQueryBuilder) FilterVendors() (string, []any, error) {
	q := sq.Select("a.id_vendedor AS id", "MAX(a.nm_vendedor) AS nome").
		From("atividades a").
		Where(b.notBlocked("a.id_vendedor")).
		GroupBy("a.id_vendedor").
		OrderBy("nome", "id")

	return build(nil, q)
}
