package dto

// EntrepriseResponse identité fiscale du showroom.
type EntrepriseResponse struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	RC      string `json:"rc,omitempty"`
	NIF     string `json:"nif,omitempty"`
	ART     string `json:"art,omitempty"`
	AI      string `json:"ai,omitempty"`
	Capital string `json:"capital,omitempty"`
}

// UpdateEntrepriseRequest body pour PUT /api/entreprise (admin).
type UpdateEntrepriseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	RC      string `json:"rc,omitempty"`
	NIF     string `json:"nif,omitempty"`
	ART     string `json:"art,omitempty"`
	AI      string `json:"ai,omitempty"`
	Capital string `json:"capital,omitempty"`
}
