package guia

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
)

// FirstCorrelativo valor inicial cuando la serie no tiene documentos emitidos.
const FirstCorrelativo = "0000001"

// NextCorrelativo calcula el siguiente correlativo conservando el ancho con ceros a la izquierda.
// Si last no es numérico se devuelve sin cambios.
func NextCorrelativo(last string, found bool) string {
	if !found {
		return FirstCorrelativo
	}
	n, err := strconv.ParseUint(strings.TrimSpace(last), 10, 64)
	if err != nil {
		return last
	}
	return fmt.Sprintf("%0*d", len(last), n+1)
}

// LastCorrelativo busca el último correlativo emitido para el par tipo de documento + serie.
func LastCorrelativo(series []entity.Series, documentTypeID, serie string) (string, bool) {
	for _, s := range series {
		if s.DocumentTypeID == documentTypeID && s.Serie == serie {
			if s.LastCorrelativo == "" {
				return "", false
			}
			return s.LastCorrelativo, true
		}
	}
	return "", false
}
