package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/partscout/backend/internal/domain"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func renderOutcome(w io.Writer, outcome domain.Outcome) {
	switch outcome.Kind {
	case domain.OutcomeFound:
		renderRecord(w, outcome.Record)
	case domain.OutcomeNoResults:
		fmt.Fprintf(w, "No results for %q.\n", outcome.Searched)
	case domain.OutcomeMismatch:
		fmt.Fprintf(w, "Searched SKU %s but the catalog returned SKU %s.\n", outcome.Searched, outcome.Found)
		fmt.Fprintf(w, "Re-run with --accept %s to use it, or --reject %s to drop it.\n", outcome.Found, outcome.Found)
	case domain.OutcomeBlocked:
		fmt.Fprintln(w, "The retailer blocked the request. Try again later from a different network.")
	case domain.OutcomeTransientError:
		fmt.Fprintf(w, "Lookup failed: %s\n", outcome.Message)
	}
}

func renderRecord(w io.Writer, record *domain.ProductRecord) {
	if record == nil {
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"SKU", record.SKU})
	t.AppendRow(table.Row{"Product ID", record.CanonicalProductID})
	t.AppendRow(table.Row{"Name", record.Name})
	appendIfSet(t, "Brand", record.Brand)
	appendIfSet(t, "Price", record.Price)
	appendIfSet(t, "Original price", record.OriginalPrice)
	appendIfSet(t, "Savings", record.Savings)
	appendIfSet(t, "Stock", stockLine(record.Stock))
	appendIfSet(t, "Location", record.Location)
	appendIfSet(t, "Mfr Part#", record.MfrPart)
	appendIfSet(t, "UPC", record.UPC)
	if record.Reviews.Count > 0 {
		t.AppendRow(table.Row{"Rating", fmt.Sprintf("%.1f (%d reviews)", record.Reviews.Rating, record.Reviews.Count)})
	}
	appendIfSet(t, "Image", record.ImageURL)
	appendIfSet(t, "URL", record.URL)
	t.Render()

	if len(record.Installation)+len(record.Protection) > 0 {
		offers := newTable(w)
		offers.AppendHeader(table.Row{"Service", "Name", "Price"})
		for _, o := range record.Installation {
			offers.AppendRow(table.Row{"Installation", o.Name, fmt.Sprintf("$%.2f", o.Price)})
		}
		for _, o := range record.Protection {
			offers.AppendRow(table.Row{"Protection", o.Name, fmt.Sprintf("$%.2f", o.Price)})
		}
		offers.Render()
	}

	if display := strings.TrimSpace(record.SpecDisplay); display != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, display)
	}
}

func appendIfSet(t table.Writer, label, value string) {
	if value != "" {
		t.AppendRow(table.Row{label, value})
	}
}

func stockLine(s domain.StockInfo) string {
	if s.StockText == "" {
		return ""
	}
	if s.Store != "" {
		return s.StockText + " at " + s.Store
	}
	return s.StockText
}
