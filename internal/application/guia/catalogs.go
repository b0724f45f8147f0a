package guia

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Guias-api/internal/domain"
	"github.com/jhoicas/Guias-api/internal/domain/entity"
	"github.com/jhoicas/Guias-api/internal/domain/repository"
)

// Catálogos consultables por typeahead.
const (
	KindWarehouses     = "almacenes"
	KindClients        = "clientes"
	KindSuppliers      = "proveedores"
	KindProducts       = "productos"
	KindDocumentTypes  = "tipos-documento"
	KindSeries         = "series"
	KindReferenceTypes = "tipos-documento-referencia"
	KindCurrencies     = "monedas"
	KindCarriers       = "transportistas"
	KindDrivers        = "conductores"
	KindVehicles       = "vehiculos"
)

// filterLimit máximo de opciones devueltas por Filter.
const filterLimit = 50

// Catalogs conjuntos de opciones cargados una vez por sesión de borrador.
// Implementa guia.Lookup. Lo protege el mutex de la sesión.
type Catalogs struct {
	warehouses []entity.Warehouse
	clients    []entity.Party
	suppliers  []entity.Party
	products   []entity.Product
	series     []entity.Series
	refTypes   []entity.Option
	currencies []entity.Currency
	carriers   []entity.Carrier
	drivers    []entity.Driver
	vehicles   []entity.Vehicle
}

// LoadCatalogs pide todos los catálogos a la vez y espera a que terminen.
// El primer error cancela el resto.
func LoadCatalogs(ctx context.Context, cat repository.CatalogRepository, tr repository.TransportRepository, companyID string) (*Catalogs, error) {
	c := &Catalogs{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { c.warehouses, err = cat.ListWarehouses(gctx, companyID); return })
	g.Go(func() (err error) { c.clients, err = cat.ListParties(gctx, companyID, entity.PartyClient); return })
	g.Go(func() (err error) { c.suppliers, err = cat.ListParties(gctx, companyID, entity.PartySupplier); return })
	g.Go(func() (err error) { c.products, err = cat.ListProducts(gctx, companyID); return })
	g.Go(func() (err error) { c.series, err = cat.ListSeries(gctx, companyID); return })
	g.Go(func() (err error) { c.refTypes, err = cat.ListReferenceDocumentTypes(gctx); return })
	g.Go(func() (err error) { c.currencies, err = cat.ListCurrencies(gctx); return })
	g.Go(func() (err error) { c.carriers, err = tr.ListCarriers(gctx, companyID); return })
	g.Go(func() (err error) { c.drivers, err = tr.ListDrivers(gctx, companyID); return })
	g.Go(func() (err error) { c.vehicles, err = tr.ListVehicles(gctx, companyID); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cargar catálogos: %w", err)
	}
	return c, nil
}

func (c *Catalogs) Warehouse(id string) (entity.Warehouse, bool) {
	for _, w := range c.warehouses {
		if w.ID == id {
			return w, true
		}
	}
	return entity.Warehouse{}, false
}

func (c *Catalogs) Client(id string) (entity.Party, bool)   { return findParty(c.clients, id) }
func (c *Catalogs) Supplier(id string) (entity.Party, bool) { return findParty(c.suppliers, id) }

func findParty(list []entity.Party, id string) (entity.Party, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Party{}, false
}

func (c *Catalogs) WarehouseAddress(id string) string {
	w, _ := c.Warehouse(id)
	return w.Address
}

func (c *Catalogs) ClientAddress(id string) string {
	p, _ := c.Client(id)
	return p.Address
}

func (c *Catalogs) SupplierAddress(id string) string {
	p, _ := c.Supplier(id)
	return p.Address
}

func (c *Catalogs) Series() []entity.Series { return c.series }

func (c *Catalogs) Product(id string) (entity.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (c *Catalogs) Currency(id string) (entity.Currency, bool) {
	for _, cur := range c.currencies {
		if cur.ID == id {
			return cur, true
		}
	}
	return entity.Currency{}, false
}

func (c *Catalogs) ReferenceType(id string) (entity.Option, bool) {
	for _, o := range c.refTypes {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Option{}, false
}

// HasDocumentType indica si alguna serie pertenece al tipo de documento.
func (c *Catalogs) HasDocumentType(id string) bool {
	for _, s := range c.series {
		if s.DocumentTypeID == id {
			return true
		}
	}
	return false
}

// HasSerie indica si la serie existe para el tipo de documento.
func (c *Catalogs) HasSerie(documentTypeID, serie string) bool {
	for _, s := range c.series {
		if s.DocumentTypeID == documentTypeID && s.Serie == serie {
			return true
		}
	}
	return false
}

func (c *Catalogs) Carrier(id string) (entity.Carrier, bool) {
	for _, x := range c.carriers {
		if x.ID == id {
			return x, true
		}
	}
	return entity.Carrier{}, false
}

func (c *Catalogs) Driver(id string) (entity.Driver, bool) {
	for _, x := range c.drivers {
		if x.ID == id {
			return x, true
		}
	}
	return entity.Driver{}, false
}

func (c *Catalogs) Vehicle(id string) (entity.Vehicle, bool) {
	for _, x := range c.vehicles {
		if x.ID == id {
			return x, true
		}
	}
	return entity.Vehicle{}, false
}

// AddCarrier, AddDriver y AddVehicle agregan registros creados durante la sesión.
func (c *Catalogs) AddCarrier(x entity.Carrier) { c.carriers = append(c.carriers, x) }
func (c *Catalogs) AddDriver(x entity.Driver)   { c.drivers = append(c.drivers, x) }
func (c *Catalogs) AddVehicle(x entity.Vehicle) { c.vehicles = append(c.vehicles, x) }

// Options convierte un catálogo en opciones genéricas.
func (c *Catalogs) Options(kind string) ([]entity.Option, error) {
	var out []entity.Option
	switch kind {
	case KindWarehouses:
		for _, w := range c.warehouses {
			out = append(out, entity.Option{ID: w.ID, Code: w.Code, Label: w.Name})
		}
	case KindClients:
		out = partyOptions(c.clients)
	case KindSuppliers:
		out = partyOptions(c.suppliers)
	case KindProducts:
		for _, p := range c.products {
			out = append(out, entity.Option{ID: p.ID, Code: p.Code, Label: p.Name})
		}
	case KindDocumentTypes:
		seen := map[string]bool{}
		for _, s := range c.series {
			if seen[s.DocumentTypeID] {
				continue
			}
			seen[s.DocumentTypeID] = true
			out = append(out, entity.Option{ID: s.DocumentTypeID, Code: s.DocumentTypeCode, Label: s.DocumentTypeName})
		}
	case KindSeries:
		for _, s := range c.series {
			out = append(out, entity.Option{ID: s.ID, Code: s.DocumentTypeID, Label: s.Serie})
		}
	case KindReferenceTypes:
		out = append(out, c.refTypes...)
	case KindCurrencies:
		for _, cur := range c.currencies {
			out = append(out, entity.Option{ID: cur.ID, Code: cur.Code, Label: cur.Name})
		}
	case KindCarriers:
		for _, x := range c.carriers {
			out = append(out, entity.Option{ID: x.ID, Code: x.RUC, Label: x.Name})
		}
	case KindDrivers:
		for _, x := range c.drivers {
			out = append(out, entity.Option{ID: x.ID, Code: x.DocumentNumber, Label: x.FullName()})
		}
	case KindVehicles:
		for _, x := range c.vehicles {
			out = append(out, entity.Option{ID: x.ID, Code: x.Plate, Label: strings.TrimSpace(x.Plate + " " + x.Brand)})
		}
	default:
		return nil, fmt.Errorf("%w: catálogo %q", domain.ErrInvalidInput, kind)
	}
	if out == nil {
		out = []entity.Option{}
	}
	return out, nil
}

func partyOptions(list []entity.Party) []entity.Option {
	out := make([]entity.Option, 0, len(list))
	for _, p := range list {
		out = append(out, entity.Option{ID: p.ID, Code: p.DocumentNumber, Label: p.Name})
	}
	return out
}

// Filter busca term en código y etiqueta sin distinguir mayúsculas ni tildes.
// Las coincidencias por prefijo van primero. Devuelve como máximo filterLimit opciones.
func (c *Catalogs) Filter(kind, term string) ([]entity.Option, error) {
	opts, err := c.Options(kind)
	if err != nil {
		return nil, err
	}
	needle := fold(strings.TrimSpace(term))
	if needle == "" {
		if len(opts) > filterLimit {
			opts = opts[:filterLimit]
		}
		return opts, nil
	}
	type hit struct {
		opt    entity.Option
		prefix bool
	}
	var hits []hit
	for _, o := range opts {
		label, code := fold(o.Label), fold(o.Code)
		switch {
		case strings.HasPrefix(label, needle) || strings.HasPrefix(code, needle):
			hits = append(hits, hit{o, true})
		case strings.Contains(label, needle) || strings.Contains(code, needle):
			hits = append(hits, hit{o, false})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].prefix && !hits[j].prefix })
	out := make([]entity.Option, 0, len(hits))
	for i, h := range hits {
		if i == filterLimit {
			break
		}
		out = append(out, h.opt)
	}
	return out, nil
}

// fold pasa a minúsculas y quita marcas diacríticas ("Añil Pérez" → "anil perez").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
