// Package pdf produit la facture imprimable du showroom.
//
// Gabarit de la page A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  ENTÊTE: Raison sociale + RC/NIF/ART/AI  │  N° Facture/Date │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENT: Nom + Tél (+ RC/NIF/ART pour les professionnels)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qté | Désignation | P.U. HT | Total HT              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX: Total HT / TVA 19% / Timbre / TOTAL TTC            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Arrêtée la présente facture à la somme de: (en lettres)    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/redshowroom/pos-api/internal/application/sales"
	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/words"
)

var _ sales.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// frPrinter formate les montants à la française (séparateur de milliers,
// virgule décimale): 3570 -> "3 570,00".
var frPrinter = message.NewPrinter(language.French)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInvoiceGenerator implémente sales.InvoicePDFGenerator avec Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator construit le générateur.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF génère le PDF et retourne ses octets.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	sale *entity.Sale,
	entreprise *entity.Entreprise,
	lines []*entity.SaleLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Facture "+sale.NumeroFacture, true).
		WithAuthor(entreprise.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, entreprise))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(entrepriseRow(entreprise))
	m.AddRows(clientRow(sale.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(sale) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: raison sociale (gauche) et numéro + date (droite).
func headerRow(sale *entity.Sale, entreprise *entity.Entreprise) core.Row {
	date := sale.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(entreprise.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("RC: %s   NIF: %s", entreprise.RC, entreprise.NIF), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(fmt.Sprintf("ART: %s   AI: %s", entreprise.ART, entreprise.AI), props.Text{
				Size: 8, Top: 13, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+sale.NumeroFacture, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// entrepriseRow: coordonnées du vendeur.
func entrepriseRow(entreprise *entity.Entreprise) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("VENDEUR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Adresse: %s   |   Tél: %s   |   Email: %s",
				nonEmpty(entreprise.Address, "—"),
				nonEmpty(entreprise.Phone, "—"),
				nonEmpty(entreprise.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// clientRow: instantané client de la vente.
func clientRow(customer entity.Customer) core.Row {
	fiscal := ""
	if customer.RC != "" || customer.NIF != "" || customer.ART != "" {
		fiscal = fmt.Sprintf("RC: %s   NIF: %s   ART: %s",
			nonEmpty(customer.RC, "—"), nonEmpty(customer.NIF, "—"), nonEmpty(customer.ART, "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tél: %s   %s", customer.Phone, fiscal),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: entête de la table des lignes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qté", 1, align.Center),
		h("Désignation", 6, align.Left),
		h("P.U. HT", 2, align.Right),
		h("Total HT", 3, align.Right),
	)
}

// tableLineRows: une rangée par ligne de vente, au prix figé.
func tableLineRows(lines []*entity.SaleLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMontant(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMontant(l.TotalHT),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloc des totaux aligné à droite. Le timbre n'apparaît que s'il
// est dû; les composants se positionnent verticalement via Top.
func totalsRow(sale *entity.Sale) core.Row {
	type ligne struct {
		label  string
		amount decimal.Decimal
		grand  bool
	}
	lignes := []ligne{
		{label: "Total HT:", amount: sale.TotalHT},
		{label: "TVA 19%:", amount: sale.TotalTVA},
	}
	if sale.Timbre.GreaterThan(decimal.Zero) {
		lignes = append(lignes, ligne{label: "Droit de timbre:", amount: sale.Timbre})
	}
	lignes = append(lignes, ligne{label: "TOTAL TTC:", amount: sale.TotalTTC, grand: true})

	var labels, values []core.Component
	for i, l := range lignes {
		top := float64(i) * 5
		labelProps := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top}
		valueProps := props.Text{Size: 9, Align: align.Right, Right: 1, Top: top}
		if l.grand {
			labelProps.Size = 10
			labelProps.Color = colorPrimary
			valueProps.Style = fontstyle.Bold
			valueProps.Size = 10
			valueProps.Color = colorPrimary
		}
		labels = append(labels, text.New(l.label, labelProps))
		values = append(values, text.New(formatMontant(l.amount), valueProps))
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

// footerRows: montant en lettres et état du règlement.
func footerRows(sale *entity.Sale) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("Arrêtée la présente facture à la somme de:", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
			text.New(words.Montant(sale.TotalTTC), props.Text{
				Size: 8, Top: 6, Color: colorGray,
			}),
		)),
	}

	reste := sale.ResteAPayer()
	if reste.GreaterThan(decimal.Zero) {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Montant versé: %s DA   |   Reste à payer: %s DA",
				formatMontant(sale.MontantVerse), formatMontant(reste)),
				props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMontant rend un montant à la française, deux décimales.
// L'arrondi est déjà fait côté domaine; ici c'est de l'affichage pur.
func formatMontant(d decimal.Decimal) string {
	return frPrinter.Sprintf("%.2f", d.InexactFloat64())
}
