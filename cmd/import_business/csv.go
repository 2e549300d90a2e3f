package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/BarApp-api/internal/domain/business"
)

// row registro candidato leído del CSV con su número de línea (1 = encabezado).
// Err indica celdas que no se pudieron convertir; la fila se rechaza sin llegar al validador.
type row struct {
	Line  int
	Draft business.Draft
	Err   error
}

// sourceReader envuelve r con el decodificador del encoding indicado (utf-8 o latin1).
func sourceReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(encoding, "-", "")) {
	case "", "utf8":
		return r, nil
	case "latin1", "iso88591":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("encoding no soportado %q (utf-8, latin1, windows-1252)", encoding)
}

// readRows lee el CSV completo. El encabezado usa los nombres JSON del registro
// (originalOrderId, date, weekDay...). itemsDenormalized es un arreglo JSON en una sola celda.
// Celdas vacías quedan como campo ausente para que el validador las reporte.
func readRows(r io.Reader, delimiter rune, loc *time.Location) ([]row, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}

	var rows []row
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		line++
		if err != nil {
			return rows, fmt.Errorf("línea %d: %w", line, err)
		}
		cell := func(name string) string {
			if i, ok := cols[name]; ok && i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		d, err := draftFrom(cell, loc)
		rows = append(rows, row{Line: line, Draft: d, Err: err})
	}
}

func draftFrom(cell func(string) string, loc *time.Location) (business.Draft, error) {
	var (
		d    business.Draft
		errs []error
	)
	d.OriginalOrderID = text(cell("originalOrderId"))
	d.WeekDay = text(cell("weekDay"))
	d.HourSlot = text(cell("hourSlot"))
	d.PaymentMethod = text(cell("paymentMethod"))
	d.Origin = text(cell("origin"))
	d.OrderType = text(cell("orderType"))
	d.WaiterID = text(cell("waiterId"))
	d.WaiterName = text(cell("waiterName"))
	d.TransactionHandlerID = text(cell("transactionHandlerId"))
	d.TransactionHandlerName = text(cell("transactionHandlerName"))
	d.DeliveryNeighborhood = text(cell("deliveryNeighborhood"))
	d.CancellationReason = text(cell("cancellationReason"))

	var err error
	if d.Date, err = parseTime(cell("date"), loc); err != nil {
		errs = append(errs, fmt.Errorf("date: %w", err))
	}
	for _, c := range []struct {
		name string
		dst  **decimal.Decimal
	}{
		{"subtotal", &d.Subtotal}, {"discount", &d.Discount}, {"deliveryFee", &d.DeliveryFee}, {"total", &d.Total},
	} {
		if *c.dst, err = parseDecimal(cell(c.name)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}
	for _, c := range []struct {
		name string
		dst  **int
	}{
		{"customerCount", &d.CustomerCount}, {"totalItemsCount", &d.TotalItemsCount},
		{"timeToStartPreparing", &d.TimeToStartPreparing}, {"timePreparing", &d.TimePreparing},
		{"timeToDelivery", &d.TimeToDelivery},
	} {
		if *c.dst, err = parseInt(cell(c.name)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}
	if v := cell("isCanceled"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("isCanceled: %w", err))
		} else {
			d.IsCanceled = &b
		}
	}
	if v := cell("itemsDenormalized"); v != "" {
		if err := json.Unmarshal([]byte(v), &d.Items); err != nil {
			errs = append(errs, fmt.Errorf("itemsDenormalized: %w", err))
		}
	}
	return d, errors.Join(errs...)
}

func text(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseTime acepta RFC3339 o "2006-01-02 15:04:05" en la zona indicada.
func parseTime(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, loc)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q", s)
	}
	return &t, nil
}

// parseDecimal acepta punto o coma decimal (exportes en es-CO/pt-BR).
func parseDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("monto inválido %q", s)
	}
	return &v, nil
}

func parseInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("entero inválido %q", s)
	}
	return &n, nil
}
