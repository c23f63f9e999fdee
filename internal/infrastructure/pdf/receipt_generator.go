// Package pdf genera el recibo de venta en PDF.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio │ N° + Fecha   │
//	│  Cajero / método de pago                   │
//	│  ───────────────────────────────────────── │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal│
//	│  ───────────────────────────────────────── │
//	│  TOTAL                                     │
//	│  QR con el identificador de la venta       │
//	└───────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"golang.org/x/text/number"

	"github.com/jhoicas/caja-api/internal/application/usecase"
	"github.com/jhoicas/caja-api/internal/domain/entity"
)

var _ usecase.ReceiptGenerator = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ReceiptGenerator implementa usecase.ReceiptGenerator con Maroto v2.
type ReceiptGenerator struct {
	business string
	printer  *message.Printer
}

// NewReceiptGenerator construye el generador; business va en la cabecera del recibo.
func NewReceiptGenerator(business string) *ReceiptGenerator {
	return &ReceiptGenerator{business: business, printer: message.NewPrinter(language.Spanish)}
}

// GenerateSaleReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateSaleReceipt(sale *entity.Sale, cajero *entity.User) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta "+sale.ID, true).
		WithAuthor(g.business, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(infoRow(sale, cajero))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.itemRows(sale.Productos)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(sale.Total))

	if sale.ID != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(qrRow(sale.ID))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.business, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("N° "+nonEmpty(sale.ID, "—"), props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+nonEmpty(sale.Fecha.String(), "—"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func infoRow(sale *entity.Sale, cajero *entity.User) core.Row {
	nombre := sale.UsuarioID
	if cajero != nil && cajero.Nombre != "" {
		nombre = cajero.Nombre
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Cajero: %s   |   Pago: %s",
				nonEmpty(nombre, "—"),
				nonEmpty(sale.MetodoPago, "—"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 4, align.Left),
		h("P. Unit.", 3, align.Right),
		h("Subtotal", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (g *ReceiptGenerator) itemRows(items []entity.SaleItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(g.quantity(it.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(it.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(g.Money(it.Precio),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(g.Money(it.Subtotal()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func (g *ReceiptGenerator) totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(g.Money(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func qrRow(id string) core.Row {
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(id, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("Gracias por su compra", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 8, Left: 3, Color: colorPrimary,
			}),
			text.New("Conserve este recibo como soporte de pago.", props.Text{
				Size: 7, Top: 16, Left: 3, Color: colorGray,
			}),
		),
	)
}

// Money formatea un monto con separadores es: "$1.234.567,50". Los enteros van sin decimales.
func (g *ReceiptGenerator) Money(d decimal.Decimal) string {
	scale := 0
	if !d.Equal(d.Truncate(0)) {
		scale = 2
	}
	return "$" + g.printer.Sprint(number.Decimal(d.Round(int32(scale)).InexactFloat64(), number.Scale(scale)))
}

func (g *ReceiptGenerator) quantity(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(0)
	}
	return g.printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(3)))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
