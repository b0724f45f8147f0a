package entity

// Warehouse representa un almacén o establecimiento (punto de partida o llegada).
type Warehouse struct {
	ID      string
	Code    string
	Name    string
	Address string
	Ubigeo  string // código de ubicación geográfica INEI
}
