package entities

import (
	"fmt"
	"time"
)

// StatusOP representa o ciclo de vida de uma Ordem de Produção.
type StatusOP string

const (
	OPAberta      StatusOP = "ABERTA"
	OPEmAndamento StatusOP = "EM_ANDAMENTO"
	OPConcluida   StatusOP = "CONCLUIDA"
)

// ProducaoOrdem é a OP gerada a partir de um pedido pronto para fabricar.
//
// O código visual ("OP-15") é o texto impresso na etiqueta e lido pelo
// scanner de chão de fábrica.
type ProducaoOrdem struct {
	ID          int64     `json:"id_ordem"`
	IDPedido    int64     `json:"id_pedido"`
	Codigo      string    `json:"codigo_visual"`
	Status      StatusOP  `json:"status_op"`
	Responsavel string    `json:"responsavel,omitempty"`
	DataInicio  time.Time `json:"data_inicio,omitempty"`
	DataFim     time.Time `json:"data_fim,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CodigoOP formata o código visual de uma OP a partir do id.
func CodigoOP(id int64) string {
	return fmt.Sprintf("OP-%d", id)
}
