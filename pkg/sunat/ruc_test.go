package sunat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRUCCheckDigit_Conocidos(t *testing.T) {
	d, err := ComputeRUCCheckDigit("2013131295")
	require.NoError(t, err)
	assert.Equal(t, byte('5'), d)

	// residuo 1: 11-1 = 10 se reduce a 0
	d, err = ComputeRUCCheckDigit("2010007097")
	require.NoError(t, err)
	assert.Equal(t, byte('0'), d)
}

func TestComputeRUCCheckDigit_PocosDigitos(t *testing.T) {
	_, err := ComputeRUCCheckDigit("20131")
	assert.Error(t, err)
}

func TestValidateRUC(t *testing.T) {
	assert.NoError(t, ValidateRUC("20131312955"))
	assert.NoError(t, ValidateRUC("20-131312955"))
	assert.NoError(t, ValidateRUC("20100070970"))

	assert.Error(t, ValidateRUC("20131312954"), "verificador incorrecto")
	assert.Error(t, ValidateRUC("2013131295"), "longitud")
	assert.Error(t, ValidateRUC("30131312955"), "prefijo")
	assert.Error(t, ValidateRUC("2013131295٥"), "dígito no ASCII")
	assert.Error(t, ValidateRUC("٢٠131312955"), "dígitos no ASCII")
}

func TestNormalizeRUC(t *testing.T) {
	ruc, err := NormalizeRUC(" 20-131312955 ")
	require.NoError(t, err)
	assert.Equal(t, "20131312955", ruc)

	_, err = NormalizeRUC("20-131312954")
	assert.Error(t, err)
}

func TestFindMotive(t *testing.T) {
	m, ok := FindMotive(MotiveTrasladoEstablecimiento)
	require.True(t, ok)
	assert.Equal(t, "04", m.SunatCode)

	_, ok = FindMotive("MT99999")
	assert.False(t, ok)
	assert.Len(t, Motives, 11)
}
