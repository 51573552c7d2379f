package dto

import "github.com/shopspring/decimal"

// ReportQuery parámetros crudos de los reportes tal como llegan en la URL.
// Las fechas admiten varios valores (?dtInicio=a&dtInicio=b); solo cuenta el primero.
type ReportQuery struct {
	DtInicio      []string
	DtFim         []string
	NmVendedor    string
	Status        string
	TipoAtividade string
	Periodo       string
}

// SummaryRowDTO fila de /resumo-geral. Los porcentajes son null si el denominador es cero.
type SummaryRowDTO struct {
	IDVendedor                 int                 `json:"id_vendedor"`
	NmVendedor                 string              `json:"nmVendedor"`
	QtdeClientesCarteira       int                 `json:"qtde_clientes_carteira"`
	QtdeClientesVisitados      int                 `json:"qtde_clientes_visitados"`
	QtdeClientesRisco          int                 `json:"qtde_clientes_risco"`
	PctClientesRisco           decimal.NullDecimal `json:"pct_clientes_risco"`
	QtdeAtividadesTotal        int                 `json:"qtde_atividades_total"`
	QtdeAtividades30d          int                 `json:"qtde_atividades_30d"`
	QtdeAtividades60d          int                 `json:"qtde_atividades_60d"`
	MetaAtividadesMes          int                 `json:"meta_atividades_mes"`
	PctMetaAtividadesMes       decimal.NullDecimal `json:"pct_meta_atividades_mes"`
	AtividadesFaltantesMeta    int                 `json:"atividades_faltantes_meta"`
	PctAtividadesFaltantesMeta decimal.NullDecimal `json:"pct_atividades_faltantes_meta"`
}

// EvolutionRowDTO fila de /evolucao. Mes o Semana según la granularidad.
type EvolutionRowDTO struct {
	IDVendedor int    `json:"idVendedor"`
	NmVendedor string `json:"nmVendedor"`
	Ano        int    `json:"ano"`
	Mes        *int   `json:"mes,omitempty"`
	Semana     *int   `json:"semana,omitempty"`
	Qtd        int    `json:"qtd"`
}

// DistributionRowDTO fila de /distribuicao.
type DistributionRowDTO struct {
	IDVendedor    int    `json:"idVendedor"`
	NmVendedor    string `json:"nmVendedor"`
	TipoAtividade string `json:"tipo_atividade"`
	Qtd           int    `json:"qtd"`
}

// HistoryRowDTO fila de /historico-global con la etiqueta "Mes/Año".
type HistoryRowDTO struct {
	IDVendedor int    `json:"idVendedor"`
	NmVendedor string `json:"nmVendedor"`
	Ano        int    `json:"ano"`
	Mes        int    `json:"mes"`
	NomeMes    string `json:"nome_mes"`
	Rotulo     string `json:"rotulo"`
	Total      int    `json:"total"`
}

// HistoryFiltersDTO eco de los filtros aplicados en /historico-global.
type HistoryFiltersDTO struct {
	NmVendedor string `json:"nmVendedor"`
	DtInicio   string `json:"dtInicio"`
	DtFim      string `json:"dtFim"`
}

// HistoryResponse salida de /historico-global.
type HistoryResponse struct {
	Sucesso  bool              `json:"sucesso"`
	Endpoint string            `json:"endpoint"`
	Filtros  HistoryFiltersDTO `json:"filtros"`
	Dados    []HistoryRowDTO   `json:"dados"`
}

// FilterOptionDTO opción de un combo de filtros.
type FilterOptionDTO struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// FiltersResponse salida de /filtros.
type FiltersResponse struct {
	Sucesso        bool              `json:"sucesso"`
	Vendedores     []FilterOptionDTO `json:"vendedores"`
	Status         []FilterOptionDTO `json:"status"`
	TiposAtividade []FilterOptionDTO `json:"tiposAtividade"`
	DataPadrao     string            `json:"dataPadrao"`
	IdsBloqueados  int               `json:"idsBloqueados"`
}
