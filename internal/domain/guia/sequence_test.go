package guia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Guias-api/internal/domain/guia"
)

func TestNextCorrelativo(t *testing.T) {
	cases := []struct {
		name  string
		last  string
		found bool
		want  string
	}{
		{"conserva ceros", "0000041", true, "0000042"},
		{"acarreo de dígitos", "0000099", true, "0000100"},
		{"sin relleno", "7", true, "8"},
		{"desborda el ancho", "99", true, "100"},
		{"no numérico se reutiliza", "ABC", true, "ABC"},
		{"sin registro previo", "", false, "0000001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, guia.NextCorrelativo(tc.last, tc.found))
		})
	}
}

func TestLastCorrelativo_PorTipoYSerie(t *testing.T) {
	lk := newFakeLookup()

	last, ok := guia.LastCorrelativo(lk.Series(), "TD09", "T001")
	assert.True(t, ok)
	assert.Equal(t, "0000041", last)

	_, ok = guia.LastCorrelativo(lk.Series(), "TD09", "T002")
	assert.False(t, ok, "serie sin documentos emitidos")

	_, ok = guia.LastCorrelativo(lk.Series(), "TDINT", "T001")
	assert.False(t, ok, "la serie pertenece a otro tipo de documento")
}
