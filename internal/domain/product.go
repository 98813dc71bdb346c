package domain

// DefaultCategory é a categoria atribuída quando o produto não existe no
// cadastro ou não tem categoria preenchida.
const DefaultCategory = "General"

// ProductRecord é dado de referência consultado por id durante a redução;
// não é filtrado por janela de tempo.
type ProductRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	IsActive      bool   `json:"is_active"`
	MinStockLevel int    `json:"min_stock_level"`
}

// PatientRecord representa um paciente/cliente cadastrado no backend.
type PatientRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
