package dto

// ErrorResponse cuerpo de error HTTP. Todas las respuestas llevan "sucesso".
type ErrorResponse struct {
	Sucesso bool   `json:"sucesso"`
	Erro    string `json:"erro"`
	Codigo  string `json:"codigo,omitempty"`
	Detalhe string `json:"detalhe,omitempty"`
}

// MessageResponse respuesta simple de éxito con mensaje.
type MessageResponse struct {
	Sucesso  bool   `json:"sucesso"`
	Mensagem string `json:"mensagem"`
}

// DataResponse envoltorio {sucesso, dados} de los reportes.
type DataResponse[T any] struct {
	Sucesso bool `json:"sucesso"`
	Dados   []T  `json:"dados"`
}

// NewDataResponse garantiza que dados se serialice como [] y nunca como null.
func NewDataResponse[T any](rows []T) DataResponse[T] {
	if rows == nil {
		rows = []T{}
	}
	return DataResponse[T]{Sucesso: true, Dados: rows}
}
