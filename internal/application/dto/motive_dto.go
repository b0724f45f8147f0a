package dto

// PolicyResponse política de enrutamiento de un motivo de traslado.
type PolicyResponse struct {
	ShowSupplier             bool   `json:"showSupplier"`
	ShowClient               bool   `json:"showClient"`
	ShowDestinationWarehouse bool   `json:"showDestinationWarehouse"`
	OriginRole               string `json:"originRole"`
	DestinationRole          string `json:"destinationRole"`
	AllowManualReasonText    bool   `json:"allowManualReasonText"`
	ReferenceDocumentFamily  string `json:"referenceDocumentFamily"`
}

// MotiveResponse motivo de traslado con su política.
type MotiveResponse struct {
	Code          string         `json:"code"`
	SunatCode     string         `json:"sunatCode"`
	Description   string         `json:"description"`
	Policy        PolicyResponse `json:"policy"`
	SearchEnabled bool           `json:"searchEnabled"`
}
