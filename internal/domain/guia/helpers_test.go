package guia_test

import "github.com/jhoicas/Guias-api/internal/domain/entity"

// fakeLookup catálogo en memoria para los tests del borrador.
type fakeLookup struct {
	warehouses map[string]string
	clients    map[string]string
	suppliers  map[string]string
	series     []entity.Series
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		warehouses: map[string]string{
			"ALM-01": "AV. INDUSTRIAL 450, ATE",
			"ALM-02": "JR. HUALLAGA 88, CALLAO",
		},
		clients:   map[string]string{"CLI-01": "AV. LIMA 123"},
		suppliers: map[string]string{"PRV-01": "CAL. LOS PINOS 9, SURCO"},
		series: []entity.Series{
			{ID: "S1", DocumentTypeID: "TD09", Serie: "T001", LastCorrelativo: "0000041", RequiresSunat: true},
			{ID: "S2", DocumentTypeID: "TD09", Serie: "T002", LastCorrelativo: ""},
			{ID: "S3", DocumentTypeID: "TDINT", Serie: "G001", LastCorrelativo: "ABC"},
		},
	}
}

func (f *fakeLookup) WarehouseAddress(id string) string { return f.warehouses[id] }
func (f *fakeLookup) ClientAddress(id string) string    { return f.clients[id] }
func (f *fakeLookup) SupplierAddress(id string) string  { return f.suppliers[id] }
func (f *fakeLookup) Series() []entity.Series           { return f.series }
