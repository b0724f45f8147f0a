package entity

// Series serie autorizada para un tipo de documento (ej: T001 para guía de remisión remitente).
// LastCorrelativo es el último número emitido tal como lo devuelve el backend ("0000041");
// vacío si la serie aún no tiene documentos.
type Series struct {
	ID               string
	DocumentTypeID   string
	DocumentTypeCode string // SUNAT catálogo 01: "09" guía remitente, "31" guía transportista
	DocumentTypeName string
	Serie            string
	LastCorrelativo  string
	RequiresSunat    bool // la serie es electrónica y debe enviarse a SUNAT al emitir
}
