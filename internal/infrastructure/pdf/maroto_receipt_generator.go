// Package pdf implementa la generación del recibo imprimible de una venta
// completada en la terminal.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comercio + Tel  │  N° Orden + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuestos / Descuento / TOTAL          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGO: método + referencia + leyenda                        │
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

	appcheckout "github.com/jhoicas/omnipos-terminal/internal/application/checkout"
	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Verificar en tiempo de compilación que implementa el puerto.
var _ appcheckout.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa checkout.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	order *entity.Order,
	payment *entity.Payment,
	merchant *entity.Merchant,
) ([]byte, error) {
	merchantName := "OmniPOS"
	if merchant != nil && merchant.Name != "" {
		merchantName = merchant.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta "+order.OrderNumber, true).
		WithAuthor(merchantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, merchant, merchantName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(order)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(paymentRow(payment))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: comercio (izq) y número de orden + fecha (der).
func headerRow(order *entity.Order, merchant *entity.Merchant, merchantName string) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006 15:04")
	phone := ""
	if merchant != nil {
		phone = merchant.Phone
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(merchantName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tel: "+nonEmpty(phone, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la orden.
func tableItemRows(items []entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.ProductName
		if it.VariantName != "" {
			name += " (" + it.VariantName + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+it.TotalPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: bloque de totales alineado a la derecha, con los montos que
// calculó el servidor.
func totalsRows(order *entity.Order) []core.Row {
	l := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 9.0
		if bold {
			style = fontstyle.Bold
			size = 11
		}
		return row.New(6).Add(
			col.New(9).Add(text.New(label, props.Text{
				Size: size, Align: align.Right, Style: style, Top: 1,
			})),
			col.New(3).Add(text.New(value, props.Text{
				Size: size, Align: align.Right, Style: style, Top: 1, Right: 1,
			})),
		)
	}
	rows := []core.Row{
		l("Subtotal:", "$"+order.Subtotal.StringFixed(2), false),
		l("Impuestos:", "$"+order.TaxAmount.StringFixed(2), false),
	}
	if !order.DiscountAmount.IsZero() {
		rows = append(rows, l("Descuento:", "-$"+order.DiscountAmount.StringFixed(2), false))
	}
	rows = append(rows,
		l("TOTAL:", "$"+order.TotalAmount.StringFixed(2), true),
		l("Pagado:", "$"+order.PaidAmount.StringFixed(2), false),
	)
	if !order.ChangeAmount.IsZero() {
		rows = append(rows, l("Cambio:", "$"+order.ChangeAmount.StringFixed(2), false))
	}
	return rows
}

// paymentRow: método de pago, referencia y leyenda de cierre.
func paymentRow(payment *entity.Payment) core.Row {
	metodo := "—"
	ref := "—"
	if payment != nil {
		metodo = payment.PaymentMethod.String()
		ref = nonEmpty(payment.ReferenceNumber, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Pago: %s   |   Ref: %s", metodo, ref), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
			text.New("Gracias por su compra", props.Text{
				Size: 9, Top: 8, Align: align.Center, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
	)
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
