package pharmadomain

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Money aceita os três formatos que o backend usa para valores monetários:
// número JSON, string decimal (campos DecimalField serializados) e null.
// Qualquer valor ausente ou inválido é coagido para zero, nunca para NaN.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*m = 0
		return nil
	}

	value, err := decimal.NewFromString(string(raw))
	if err != nil {
		*m = 0
		return nil
	}

	f, _ := value.Float64()
	*m = Money(f)

	return nil
}

// Count é a contraparte inteira de Money, com a mesma política de coerção.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*c = 0
		return nil
	}

	value, err := decimal.NewFromString(string(raw))
	if err != nil {
		*c = 0
		return nil
	}

	*c = Count(value.IntPart())

	return nil
}

// ID normaliza identificadores que o backend retorna ora como número,
// ora como string.
type ID string

func (i *ID) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(data), `"`)
	if bytes.Equal(raw, []byte("null")) {
		*i = ""
		return nil
	}

	*i = ID(raw)

	return nil
}
