package guia

// AddressSelections entidades seleccionadas y sus direcciones ya resueltas desde el catálogo.
type AddressSelections struct {
	OriginWarehouseID      string
	DestinationWarehouseID string
	ClientID               string
	SupplierID             string

	// Lookups sobre el catálogo en caché: devuelven "" si el ID no existe.
	WarehouseAddress func(id string) string
	ClientAddress    func(id string) string
	SupplierAddress  func(id string) string
}

// Addresses punto de partida y punto de llegada.
type Addresses struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// ResolveAddresses deriva partida y llegada según la política. Pura e idempotente.
func ResolveAddresses(policy RoutingPolicy, sel AddressSelections) Addresses {
	return Addresses{
		Origin:      sel.lookup(policy.OriginRole, sel.OriginWarehouseID),
		Destination: sel.lookup(policy.DestinationRole, sel.destinationWarehouse(policy)),
	}
}

// destinationWarehouse solo usa el almacén destino cuando la política lo muestra;
// en otro caso la mercadería llega al almacén de la sesión.
func (s AddressSelections) destinationWarehouse(policy RoutingPolicy) string {
	if policy.ShowDestinationWarehouse {
		return s.DestinationWarehouseID
	}
	return s.OriginWarehouseID
}

func (s AddressSelections) lookup(role Role, warehouseID string) string {
	var id string
	var fn func(string) string
	switch role {
	case RoleWarehouse:
		id, fn = warehouseID, s.WarehouseAddress
	case RoleClient:
		id, fn = s.ClientID, s.ClientAddress
	case RoleSupplier:
		id, fn = s.SupplierID, s.SupplierAddress
	default:
		return ""
	}
	if id == "" || fn == nil {
		return ""
	}
	return fn(id)
}
