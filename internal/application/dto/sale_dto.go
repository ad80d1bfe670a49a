package dto

import "github.com/shopspring/decimal"

// CustomerDTO instantané client d'une vente (nom et téléphone obligatoires).
type CustomerDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	RC      string `json:"rc,omitempty"`
	NIF     string `json:"nif,omitempty"`
	ART     string `json:"art,omitempty"`
	Address string `json:"address,omitempty"`
}

// CheckoutItemRequest ligne du panier. UnitPrice à zéro = reprendre le prix
// catalogue courant.
type CheckoutItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price,omitempty"`
}

// FiscalPolicyDTO surcharge optionnelle de la politique fiscale du
// déploiement pour une vente donnée.
type FiscalPolicyDTO struct {
	Mode      string `json:"mode"`                 // tva-only | tva-timbre
	StampBase string `json:"stamp_base,omitempty"` // ht | ht+tva
	Rounding  string `json:"rounding,omitempty"`   // total | line
}

// CheckoutRequest body pour POST /api/sales: valide tout le panier puis le
// persiste en une seule transaction (tout ou rien).
type CheckoutRequest struct {
	Customer    CustomerDTO           `json:"customer"`
	Items       []CheckoutItemRequest `json:"items"`
	WithInvoice bool                  `json:"with_invoice"` // attribuer un numéro de facture
	Versement   decimal.Decimal       `json:"versement"`    // acompte initial, 0 = vente à crédit
	Policy      *FiscalPolicyDTO      `json:"policy,omitempty"`
}

// ListSalesRequest filtres pour GET /api/sales.
type ListSalesRequest struct {
	PageRequest
	From     string `query:"from"` // AAAA-MM-JJ
	To       string `query:"to"`
	Customer string `query:"customer"`
}

// SaleLineResponse ligne de vente dans les réponses.
type SaleLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalHT     decimal.Decimal `json:"total_ht"`
}

// SaleResponse vente avec détail pour POST /api/sales et GET /api/sales/:id.
type SaleResponse struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	Customer      CustomerDTO        `json:"customer"`
	NumeroFacture string             `json:"numero_facture,omitempty"`
	TotalHT       decimal.Decimal    `json:"total_ht"`
	TotalTVA      decimal.Decimal    `json:"total_tva"`
	Timbre        decimal.Decimal    `json:"timbre"`
	TotalTTC      decimal.Decimal    `json:"total_ttc"`
	MontantVerse  decimal.Decimal    `json:"montant_verse"`
	ResteAPayer   decimal.Decimal    `json:"reste_a_payer"`
	Policy        string             `json:"policy"`
	Lines         []SaleLineResponse `json:"lines,omitempty"`
}

// RecordPaymentRequest body pour POST /api/sales/:id/payments.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PaymentResponse versement dans les réponses.
type PaymentResponse struct {
	ID     string          `json:"id"`
	SaleID string          `json:"sale_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}
