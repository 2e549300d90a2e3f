// Package pdf genera el reporte de cierre diario del restaurante.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Cierre diario + restaurante  │  Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos | Pedidos | Descuentos | Domicilios | TP  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Origen | Pedidos | Ingresos | Ticket promedio        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Ítem | Categoría | Unidades                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	"github.com/jhoicas/BarApp-api/internal/application/analytics"
	"github.com/jhoicas/BarApp-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 128, Green: 32, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.DailyReportGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.DailyReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateDailyReport genera el PDF de cierre y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDailyReport(_ context.Context, data dto.DailyReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre diario "+data.Summary.Date, true).
		WithAuthor("BarApp", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(data.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("VENTAS POR ORIGEN"))
	m.AddRows(originHeaderRow())
	m.AddRows(originRows(data.ByOrigin)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("ÍTEMS MÁS VENDIDOS"))
	m.AddRows(itemsHeaderRow())
	m.AddRows(itemRows(data.TopItems)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data dto.DailyReportData) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("CIERRE DIARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Restaurante: "+data.RestaurantID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Summary.Date, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRows: una etiqueta y su valor por indicador.
func summaryRows(s dto.DailySummaryDTO) []core.Row {
	kv := func(label, value string, strong bool) core.Row {
		style := fontstyle.Normal
		if strong {
			style = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(6).Add(text.New(value, props.Text{Style: style, Size: 9, Align: align.Right, Top: 1})),
		)
	}
	return []core.Row{
		kv("Ingresos totales", "$"+formatMoney(s.TotalRevenue), true),
		kv("Pedidos", strconv.Itoa(s.TotalOrders), false),
		kv("Descuentos", "$"+formatMoney(s.TotalDiscount), false),
		kv("Domicilios cobrados", "$"+formatMoney(s.TotalDeliveryFee), false),
		kv("Ticket promedio", "$"+formatMoney(s.AverageTicket), true),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func originHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Origen", 4, align.Left),
		headerCell("Pedidos", 2, align.Center),
		headerCell("Ingresos", 3, align.Right),
		headerCell("Ticket promedio", 3, align.Right),
	)
}

func originRows(groups []dto.OriginSalesDTO) []core.Row {
	if len(groups) == 0 {
		return []core.Row{emptyRow("Sin ventas en el día")}
	}
	rows := make([]core.Row, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, row.New(6).Add(
			cell(g.Origin, 4, align.Left),
			cell(strconv.Itoa(g.TotalOrders), 2, align.Center),
			cell("$"+formatMoney(g.TotalRevenue), 3, align.Right),
			cell("$"+formatMoney(g.AverageTicket), 3, align.Right),
		))
	}
	return rows
}

func itemsHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("#", 1, align.Center),
		headerCell("Ítem", 6, align.Left),
		headerCell("Categoría", 3, align.Left),
		headerCell("Unidades", 2, align.Right),
	)
}

func itemRows(items []dto.TopItemDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("Sin ítems vendidos")}
	}
	rows := make([]core.Row, 0, len(items))
	for i, it := range items {
		rows = append(rows, row.New(6).Add(
			cell(strconv.Itoa(i+1), 1, align.Center),
			cell(it.ItemName, 6, align.Left),
			cell(it.Category, 3, align.Left),
			cell(strconv.Itoa(it.TotalUnitsSold), 2, align.Right),
		))
	}
	return rows
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Align: align.Center, Top: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney monto con dos decimales, puntos de miles y coma decimal.
// Ej: 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
