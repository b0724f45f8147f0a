package entity

// PartyKind distingue clientes de proveedores en los catálogos.
type PartyKind string

const (
	PartyClient   PartyKind = "CLIENTE"
	PartySupplier PartyKind = "PROVEEDOR"
)

// Party representa un cliente o proveedor tal como lo entrega el catálogo del backend.
type Party struct {
	ID             string
	Kind           PartyKind
	DocumentType   string // SUNAT catálogo 06: 1 DNI, 6 RUC, ...
	DocumentNumber string
	Name           string
	Address        string
}
