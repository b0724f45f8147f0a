// Package sunat contiene catálogos y validaciones alineados a la guía de remisión
// electrónica SUNAT (Perú), Resolución de Superintendencia 000123-2022/SUNAT.
package sunat

// =============================================================================
// Catálogo 20 - Motivos de traslado
// El backend ERP identifica cada motivo con un código interno (MTxxxxx) que se
// mapea al código SUNAT al generar el XML.
// =============================================================================

const (
	MotiveVenta                   = "MT00001"
	MotiveCompra                  = "MT00002"
	MotiveDevolucionProveedor     = "MT00003"
	MotiveVentaSujetaConfirmacion = "MT00004"
	MotiveTrasladoEstablecimiento = "MT00005"
	MotiveDevolucionCliente       = "MT00006"
	MotiveConsignacion            = "MT00007"
	MotiveEmisorItinerante        = "MT00008"
	MotiveOtros                   = "MT00009"
	MotiveImportacion             = "MT00010"
	MotiveExportacion             = "MT00011"
)

// Motive entrada del catálogo de motivos de traslado.
type Motive struct {
	Code        string
	SunatCode   string
	Description string
}

// Motives catálogo completo en orden de presentación.
var Motives = []Motive{
	{MotiveVenta, "01", "VENTA"},
	{MotiveCompra, "02", "COMPRA"},
	{MotiveDevolucionProveedor, "06", "DEVOLUCIÓN A PROVEEDOR"},
	{MotiveVentaSujetaConfirmacion, "14", "VENTA SUJETA A CONFIRMACIÓN DEL COMPRADOR"},
	{MotiveTrasladoEstablecimiento, "04", "TRASLADO ENTRE ESTABLECIMIENTOS DE LA MISMA EMPRESA"},
	{MotiveDevolucionCliente, "06", "DEVOLUCIÓN DE CLIENTE"},
	{MotiveConsignacion, "05", "CONSIGNACIÓN"},
	{MotiveEmisorItinerante, "18", "TRASLADO EMISOR ITINERANTE CP"},
	{MotiveOtros, "13", "OTROS"},
	{MotiveImportacion, "08", "IMPORTACIÓN"},
	{MotiveExportacion, "09", "EXPORTACIÓN"},
}

// FindMotive busca un motivo por código interno.
func FindMotive(code string) (Motive, bool) {
	for _, m := range Motives {
		if m.Code == code {
			return m, true
		}
	}
	return Motive{}, false
}

// =============================================================================
// Catálogo 18 - Modalidad de traslado
// =============================================================================

const (
	TransportModePublico = "01" // Transporte público: requiere transportista (RUC + registro MTC)
	TransportModePrivado = "02" // Transporte privado: requiere conductor y vehículo
)

// ValidTransportModes modalidades aceptadas.
var ValidTransportModes = map[string]bool{
	TransportModePublico: true,
	TransportModePrivado: true,
}

// =============================================================================
// Catálogo 06 - Tipos de documento de identidad
// =============================================================================

const (
	IdentityDocNoDomiciliado = "0"
	IdentityDocDNI           = "1"
	IdentityDocCarnetExtr    = "4"
	IdentityDocRUC           = "6"
	IdentityDocPasaporte     = "7"
)

// =============================================================================
// Catálogo 01 - Tipos de documento (solo los usados por guías)
// =============================================================================

const (
	DocTypeGuiaRemitente     = "09"
	DocTypeGuiaTransportista = "31"
)

// UnitUnit unidad SUNAT por defecto (catálogo 03, UN/ECE rec 20).
const UnitUnit = "NIU"
