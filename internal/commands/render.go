package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/cfdilens/cfdilens/internal/analytics"
)

const noDataMessage = "No invoices match the selected filters."

func renderReport(w io.Writer, rep analytics.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Period: %s to %s\n", rep.From, rep.To)

	section(tw, "Summary")
	fmt.Fprintf(tw, "Invoices\t%d\n", rep.Summary.Count)
	fmt.Fprintf(tw, "Income\t%s\n", money(rep.Summary.Income))
	fmt.Fprintf(tw, "Expense\t%s\n", money(rep.Summary.Expense))
	fmt.Fprintf(tw, "Balance\t%s\n", money(rep.Summary.Balance))
	fmt.Fprintf(tw, "Mean\t%s\n", money(rep.Summary.Mean))

	if rep.NoData {
		fmt.Fprintf(tw, "\n%s\n", noDataMessage)
		return tw.Flush()
	}

	section(tw, "Spread")
	fmt.Fprintf(tw, "Max\t%s\n", nullMoney(rep.Spread.Max))
	fmt.Fprintf(tw, "Min\t%s\n", nullMoney(rep.Spread.Min))
	fmt.Fprintf(tw, "Range\t%s\n", nullMoney(rep.Spread.Range))
	fmt.Fprintf(tw, "Std dev\t%s\n", nullMoney(rep.Spread.Std))

	section(tw, "Quintiles")
	for i, th := range rep.Thresholds {
		fmt.Fprintf(tw, "P%d\t%s\n", (i+1)*20, nullMoney(th))
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Bucket\tInvoices\tTotal\tShare")
	for _, b := range rep.Quintiles {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s%%\n", b.Label, b.Count, money(b.Sum), b.Percent.StringFixed(1))
	}

	section(tw, "Weekly")
	fmt.Fprintln(tw, "Week ending\tInvoices\tTotal")
	for _, wk := range analytics.FillWeeks(rep.Weekly) {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", wk.WeekEnding.Format(dateFormat), wk.Count, money(wk.Total))
	}

	entityTable(tw, fmt.Sprintf("Top %d entities", len(rep.TopSmall)), rep.TopSmall)
	// The wide ranking reads bottom-up, largest last.
	entityTable(tw, fmt.Sprintf("Top %d entities (ascending)", len(rep.TopLarge)), analytics.Ascending(rep.TopLarge))

	section(tw, "By type")
	fmt.Fprintln(tw, "Type\tInvoices\tTotal\tShare")
	for _, t := range rep.Types {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s%%\n", t.Label, t.Count, money(t.Total), t.Percent.StringFixed(1))
	}

	section(tw, "Payment method / status")
	for _, m := range rep.Hierarchy {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", m.Method, m.Count, money(m.Total))
		for _, st := range m.Statuses {
			fmt.Fprintf(tw, "  %s\t%d\t%s\n", st.Status, st.Count, money(st.Total))
		}
	}

	section(tw, "Possible duplicates")
	fmt.Fprintf(tw, "Flagged invoices\t%d\n", rep.Duplicates.Count)
	for _, d := range rep.Duplicates.Groups {
		fmt.Fprintf(tw, "%s\t%s\t%s\tx%d\n", d.Date.Format(dateFormat), d.Entity, money(d.Amount), len(d.Indexes))
	}

	section(tw, fmt.Sprintf("Largest invoices (%d of %d)", len(rep.Explorer.Rows), rep.Explorer.Total))
	fmt.Fprintln(tw, strings.Join(rep.Explorer.Columns, "\t"))
	for _, row := range rep.Explorer.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
}

func entityTable(w io.Writer, title string, rows []analytics.EntityTotal) {
	section(w, title)
	fmt.Fprintln(w, "Entity\tInvoices\tTotal")
	for _, e := range rows {
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.Entity, e.Count, money(e.Total))
	}
}

func nullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return "n/a"
	}
	return money(d.Decimal)
}

// money renders d as $1,234.56.
func money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	s := d.StringFixed(2)
	whole, frac := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + "." + frac
}
