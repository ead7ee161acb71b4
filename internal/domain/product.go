package domain

// Product — типизированное подмножество каталожной записи.
// Каталог принципиально открыт по схеме: всё, что фильтр не читает,
// проносится сквозь ядро нетронутым в Extra.
type Product struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
	// Extra — произвольные атрибуты записи (категория, изображение, сток и т.п.).
	Extra map[string]any `json:"extra,omitempty"`
}
