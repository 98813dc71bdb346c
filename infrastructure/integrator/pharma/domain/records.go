package pharmadomain

// Sale é o payload bruto de uma venda como o backend serializa.
type Sale struct {
	ID          ID      `json:"id,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	TotalAmount Money   `json:"total_amount,omitempty"`
	TaxAmount   Money   `json:"tax_amount,omitempty"`
	Customer    *ID     `json:"customer,omitempty"`
	Status      string  `json:"status,omitempty"`
	Discount    Money   `json:"discount,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// SaleItem é o payload bruto de um item de venda.
type SaleItem struct {
	ID          ID     `json:"id,omitempty"`
	Sale        ID     `json:"sale,omitempty"`
	Product     ID     `json:"product,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    Count  `json:"quantity,omitempty"`
	UnitPrice   Money  `json:"unit_price,omitempty"`
	UnitCost    Money  `json:"unit_cost,omitempty"`
	LineTotal   Money  `json:"line_total,omitempty"`
}

// Product é o payload bruto de um produto do cadastro.
type Product struct {
	ID            ID     `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Category      string `json:"category,omitempty"`
	IsActive      bool   `json:"is_active,omitempty"`
	MinStockLevel Count  `json:"min_stock_level,omitempty"`
	Barcode       string `json:"barcode,omitempty"`
}

// Patient é o payload bruto de um paciente cadastrado.
type Patient struct {
	ID        ID     `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	IsActive  bool   `json:"is_active,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DailyTrendEntry é um ponto do rollup diário pré-calculado pelo backend.
type DailyTrendEntry struct {
	Date    string `json:"date,omitempty"`
	Revenue Money  `json:"revenue,omitempty"`
	Count   Count  `json:"count,omitempty"`
}

// TodayRevenue é o faturamento do dia corrente informado pelo backend.
type TodayRevenue struct {
	Revenue Money `json:"revenue,omitempty"`
	Count   Count `json:"count,omitempty"`
}

// InventoryStats é o endpoint pré-agregado de estoque. Quando presente, seus
// valores prevalecem sobre os contadores calculados localmente.
type InventoryStats struct {
	TotalProducts   Count `json:"total_products,omitempty"`
	InStockCount    Count `json:"in_stock_count,omitempty"`
	LowStockCount   Count `json:"low_stock_count,omitempty"`
	OutOfStockCount Count `json:"out_of_stock_count,omitempty"`
}
