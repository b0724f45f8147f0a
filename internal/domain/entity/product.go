package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo con su unidad base y presentaciones de compra.
type Product struct {
	ID            string
	Code          string
	Name          string
	UnitCode      string // unidad base de stock (ej: "NIU", "KGM")
	UnitName      string
	Presentations []Presentation
}

// Presentation empaque comprable de un producto (caja x 12, saco 50 kg, ...).
type Presentation struct {
	ID       string
	UnitCode string
	UnitName string
	Factor   decimal.Decimal // unidades base por presentación
}

// UnitOfMeasureOption opción de unidad para una línea de guía.
// PresentationID es nil para la unidad base del producto.
type UnitOfMeasureOption struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	PresentationID *string `json:"presentationId"`
	Base           bool    `json:"base"`
}
