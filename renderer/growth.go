package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
)

// GrowthMarkdown renders a compounded regular investment.
func GrowthMarkdown(g *Growth) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Compound Growth")
	doc.PlainText(fmt.Sprintf("An investment starting at %s, with %d monthly deposits of %s having an annual return of %s, grows to: %s",
		g.Initial, g.Months, g.Deposit, g.AnnualRate, md.Bold(g.Final.String())))

	doc.Table(md.TableSet{
		Header: []string{"", "Value"},
		Rows: [][]string{
			{"Initial balance", g.Initial.String()},
			{"Monthly deposit", g.Deposit.String()},
			{"Months", fmt.Sprint(g.Months)},
			{"Annual rate", g.AnnualRate.String()},
			{"Monthly rate", fmt.Sprintf("%.4f%%", float64(g.MonthlyRate))},
			{"Total contributed", g.Contributed.String()},
			{"Interest", g.Interest.SignedString()},
			{"Final balance", g.Final.String()},
		},
	})
	return doc.String()
}
