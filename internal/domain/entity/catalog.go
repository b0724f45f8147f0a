package entity

// Option elemento genérico de un catálogo desplegable.
type Option struct {
	ID    string `json:"id"`
	Code  string `json:"code,omitempty"`
	Label string `json:"label"`
}

// Currency moneda disponible para la guía.
type Currency struct {
	ID     string
	Code   string // ISO 4217: PEN, USD
	Name   string
	Symbol string
}
