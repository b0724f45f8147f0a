package entity

// Carrier empresa de transporte público (modalidad 01).
type Carrier struct {
	ID              string
	RUC             string
	Name            string
	MTCRegistration string // número de registro MTC
}

// Driver conductor para transporte privado (modalidad 02).
type Driver struct {
	ID             string
	DocumentType   string
	DocumentNumber string
	FirstNames     string
	LastNames      string
	License        string
}

// FullName nombre completo del conductor.
func (d Driver) FullName() string {
	if d.LastNames == "" {
		return d.FirstNames
	}
	return d.FirstNames + " " + d.LastNames
}

// Vehicle unidad de transporte.
type Vehicle struct {
	ID             string
	Plate          string
	Brand          string
	MTCCertificate string // certificado de habilitación vehicular
}
