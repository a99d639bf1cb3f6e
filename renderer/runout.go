package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
)

// RunoutMarkdown renders a pension drawdown or a mortgage repayment.
func RunoutMarkdown(r *Runout) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	switch r.Kind {
	case Mortgage:
		doc.H1("Mortgage Repayment")
		doc.PlainText(fmt.Sprintf("A mortgage of %s, with an annual interest rate of %s, and monthly repayments of %s is repaid after:",
			r.Initial, r.AnnualRate, r.Payment))
	default:
		doc.H1("Pension Drawdown")
		doc.PlainText(fmt.Sprintf("A pension fund of %s, invested at an annual return of %s, drawing a monthly income of %s, runs out after:",
			r.Initial, r.AnnualRate, r.Payment))
	}
	doc.PlainText(md.Bold(runoutText(r)))

	if len(r.Schedule) == 0 {
		return doc.String()
	}
	label := "Balance"
	if r.Kind == Mortgage {
		label = "Outstanding"
	}
	rows := make([][]string, 0, len(r.Schedule))
	for _, b := range r.Schedule {
		rows = append(rows, []string{fmt.Sprint(b.Months / 12), fmt.Sprint(b.Months % 12), b.Balance.String()})
	}
	doc.H2("Schedule")
	doc.Table(md.TableSet{
		Header: []string{"Years", "Months", label},
		Rows:   rows,
	})
	return doc.String()
}

func runoutText(r *Runout) string {
	if r.Runout.Never {
		return "Never."
	}
	return r.Runout.String()
}
