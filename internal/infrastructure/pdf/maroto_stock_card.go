// Package pdf implementa la exportación del kardex de un artículo como PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del artículo + SKU  │  Ventana de fechas    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Apertura | Entradas | Salidas | Cierre            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Dirección | Referencia | Delta | Saldo      │
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

	appinventory "github.com/neonflow/neonflow-api/internal/application/inventory"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/ledger"
)

const dateLayout = "2006-01-02"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 120, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.StockCardPDFGenerator = (*MarotoStockCardGenerator)(nil)

// MarotoStockCardGenerator implementa inventory.StockCardPDFGenerator usando Maroto v2.
type MarotoStockCardGenerator struct{}

// NewMarotoStockCardGenerator construye el generador.
func NewMarotoStockCardGenerator() *MarotoStockCardGenerator { return &MarotoStockCardGenerator{} }

// GenerateStockCardPDF genera el PDF del kardex y devuelve sus bytes.
func (g *MarotoStockCardGenerator) GenerateStockCardPDF(_ context.Context, view appinventory.StockCardView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de artículo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(view))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(view.Card))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(view.Card.Rows) {
		m.AddRows(r)
	}
	if len(view.Card.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos en la ventana seleccionada.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + SKU (izq) y ventana de fechas (der).
func headerRow(view appinventory.StockCardView) core.Row {
	window := "Historial completo"
	if view.StartDate != nil || view.EndDate != nil {
		from, to := "…", "…"
		if view.StartDate != nil {
			from = view.StartDate.Format(dateLayout)
		}
		if view.EndDate != nil {
			to = view.EndDate.Format(dateLayout)
		}
		window = from + " a " + to
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(view.Item.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SKU: "+view.Item.SKU+"   |   Categoría: "+view.Item.Category, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("KARDEX DE ARTÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(window, props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New(fmt.Sprintf("Cantidad actual: %d", view.Item.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRow: apertura, entradas, salidas y cierre de la ventana.
func summaryRow(card ledger.StockCard) core.Row {
	cell := func(label string, value int64, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(fmt.Sprintf("%d", value), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: color, Top: 7,
			}),
		)
	}
	return row.New(16).Add(
		cell("Saldo apertura", card.OpeningBalance, colorPrimary),
		cell("Entradas", card.TotalIn, colorPrimary),
		cell("Salidas", card.TotalOut, colorRed),
		cell("Saldo cierre", card.ClosingBalance, colorPrimary),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Dirección", 2, align.Center),
		h("Referencia", 4, align.Left),
		h("Delta", 2, align.Right),
		h("Saldo", 2, align.Right),
	)
}

// tableRows: una fila por movimiento de la ventana.
func tableRows(rows []ledger.Row) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		deltaColor := colorPrimary
		if r.SignedDelta < 0 {
			deltaColor = colorRed
		}
		direction := "Entrada"
		if r.Direction == entity.DirectionOut {
			direction = "Salida"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				r.Date.Format(dateLayout),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				direction,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				nonEmpty(r.Reference, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%+d", r.SignedDelta),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: deltaColor},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", r.BalanceAfter),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
