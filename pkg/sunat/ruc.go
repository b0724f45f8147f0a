package sunat

import "fmt"

// pesos del dígito verificador del RUC (módulo 11), aplicados a los 10 primeros dígitos.
var rucWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// prefijos válidos: 10 persona natural, 15/17 no domiciliados, 20 persona jurídica.
var rucPrefixes = map[string]bool{"10": true, "15": true, "17": true, "20": true}

// ValidateRUC valida longitud, prefijo y dígito verificador de un RUC.
// Acepta separadores ("20-100070970-7").
func ValidateRUC(ruc string) error {
	digits := extractDigits(ruc)
	if len(digits) != 11 {
		return fmt.Errorf("sunat: el RUC debe tener 11 dígitos, se encontraron %d", len(digits))
	}
	if !rucPrefixes[string(digits[:2])] {
		return fmt.Errorf("sunat: prefijo de RUC inválido %q", string(digits[:2]))
	}
	expected, err := ComputeRUCCheckDigit(string(digits[:10]))
	if err != nil {
		return err
	}
	if digits[10] != expected {
		return fmt.Errorf("sunat: dígito verificador del RUC inválido: esperado %c, recibido %c", expected, digits[10])
	}
	return nil
}

// ComputeRUCCheckDigit calcula el dígito verificador para los 10 primeros dígitos.
func ComputeRUCCheckDigit(base string) (byte, error) {
	digits := extractDigits(base)
	if len(digits) < 10 {
		return 0, fmt.Errorf("sunat: se requieren 10 dígitos para calcular el verificador, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits[:10] {
		sum += int(d-'0') * rucWeights[i]
	}
	check := 11 - sum%11
	switch check {
	case 10:
		check = 0
	case 11:
		check = 1
	}
	return byte('0' + check), nil
}

// NormalizeRUC valida el RUC y lo devuelve como 11 dígitos sin separadores.
func NormalizeRUC(ruc string) (string, error) {
	if err := ValidateRUC(ruc); err != nil {
		return "", err
	}
	return string(extractDigits(ruc)), nil
}

// solo dígitos ASCII; cualquier otro carácter se descarta.
func extractDigits(s string) []byte {
	var out []byte
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}
	return out
}
