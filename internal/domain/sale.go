package domain

import "time"

// SaleRecord representa uma venda concluída retornada pelo backend.
// Imutável depois do fetch.
type SaleRecord struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	TotalAmount float64   `json:"total_amount"`
	TaxAmount   float64   `json:"tax_amount"`
	Customer    *string   `json:"customer"`
}

// SaleItemRecord é um item de venda, associado à venda pai pelo campo Sale.
// Itens cuja venda pai não está no mesmo lote filtrado são descartados da agregação.
type SaleItemRecord struct {
	Sale        string  `json:"sale"`
	Product     string  `json:"product"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitCost    float64 `json:"unit_cost"`
	LineTotal   float64 `json:"line_total"`
}
