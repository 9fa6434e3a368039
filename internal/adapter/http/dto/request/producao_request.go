package request

type GerarOPRequest struct {
	IDPedido int64 `json:"id_pedido" binding:"required"`
}

// ScannerRequest é uma bipada: o código pode vir completo ("OP-15") ou só o
// número, dependendo do leitor.
type ScannerRequest struct {
	Codigo   string `json:"codigo" binding:"required"`
	Operador string `json:"operador"`
}
